package mapcanvas

// VehicleEvent is sent when a vehicle marker is activated.
type VehicleEvent struct {
	TransitID     string
	TransitPathID string
}

// StationEvent is sent when a station marker is activated.
type StationEvent struct {
	TransitID string
	StationID string
}

// Handlers are the optional interaction hooks of a map.
// Markers are interactive when the matching hook is set.
type Handlers struct {
	OnVehicle func(VehicleEvent)
	OnStation func(StationEvent)
}

// DispatchVehicle invokes the vehicle hook for the marker with the given key.
// It reports false if there is no such interactive marker.
func (s *Scene) DispatchVehicle(key string) bool {
	for _, v := range s.Vehicles {
		if v.Key != key || !v.Interactive {
			continue
		}
		s.handlers.OnVehicle(VehicleEvent{TransitID: v.TransitID, TransitPathID: v.Marker.PathID})
		return true
	}
	return false
}

// DispatchStation invokes the station hook for the marker with the given key.
// It reports false if there is no such interactive marker.
func (s *Scene) DispatchStation(key string) bool {
	for _, st := range s.Stations {
		if st.Key != key || !st.Interactive {
			continue
		}
		s.handlers.OnStation(StationEvent{TransitID: st.TransitID, StationID: st.Marker.StationID})
		return true
	}
	return false
}
