package config

import "github.com/treehub/storm-monitor/internal/domain"

// DefaultRoster is the built-in list of monitored US cities. It mirrors the
// markets the platform operates in; deployments narrow or extend it with
// LOCATIONS_FILE. Returned as a fresh slice so callers may mutate it.
func DefaultRoster() []domain.Location {
	roster := make([]domain.Location, len(defaultRoster))
	copy(roster, defaultRoster)
	return roster
}

var defaultRoster = []domain.Location{
	{Lat: 40.7128, Lon: -74.0060, City: "New York", State: "NY"},
	{Lat: 34.0522, Lon: -118.2437, City: "Los Angeles", State: "CA"},
	{Lat: 41.8781, Lon: -87.6298, City: "Chicago", State: "IL"},
	{Lat: 29.7604, Lon: -95.3698, City: "Houston", State: "TX"},
	{Lat: 33.4484, Lon: -112.0740, City: "Phoenix", State: "AZ"},
	{Lat: 39.9526, Lon: -75.1652, City: "Philadelphia", State: "PA"},
	{Lat: 29.4241, Lon: -98.4936, City: "San Antonio", State: "TX"},
	{Lat: 32.7157, Lon: -117.1611, City: "San Diego", State: "CA"},
	{Lat: 32.7767, Lon: -96.7970, City: "Dallas", State: "TX"},
	{Lat: 30.2672, Lon: -97.7431, City: "Austin", State: "TX"},
	{Lat: 30.3322, Lon: -81.6557, City: "Jacksonville", State: "FL"},
	{Lat: 37.7749, Lon: -122.4194, City: "San Francisco", State: "CA"},
	{Lat: 39.9612, Lon: -82.9988, City: "Columbus", State: "OH"},
	{Lat: 35.2271, Lon: -80.8431, City: "Charlotte", State: "NC"},
	{Lat: 39.7684, Lon: -86.1581, City: "Indianapolis", State: "IN"},
	{Lat: 47.6062, Lon: -122.3321, City: "Seattle", State: "WA"},
	{Lat: 39.7392, Lon: -104.9903, City: "Denver", State: "CO"},
	{Lat: 38.9072, Lon: -77.0369, City: "Washington", State: "DC"},
	{Lat: 42.3601, Lon: -71.0589, City: "Boston", State: "MA"},
	{Lat: 36.1627, Lon: -86.7816, City: "Nashville", State: "TN"},
	{Lat: 31.7619, Lon: -106.4850, City: "El Paso", State: "TX"},
	{Lat: 42.3314, Lon: -83.0458, City: "Detroit", State: "MI"},
	{Lat: 35.1495, Lon: -90.0490, City: "Memphis", State: "TN"},
	{Lat: 45.5152, Lon: -122.6784, City: "Portland", State: "OR"},
	{Lat: 35.4676, Lon: -97.5164, City: "Oklahoma City", State: "OK"},
	{Lat: 36.1699, Lon: -115.1398, City: "Las Vegas", State: "NV"},
	{Lat: 38.2527, Lon: -85.7585, City: "Louisville", State: "KY"},
	{Lat: 39.2904, Lon: -76.6122, City: "Baltimore", State: "MD"},
	{Lat: 43.0389, Lon: -87.9065, City: "Milwaukee", State: "WI"},
	{Lat: 35.0844, Lon: -106.6504, City: "Albuquerque", State: "NM"},
	{Lat: 32.2226, Lon: -110.9747, City: "Tucson", State: "AZ"},
	{Lat: 36.7378, Lon: -119.7871, City: "Fresno", State: "CA"},
	{Lat: 38.5816, Lon: -121.4944, City: "Sacramento", State: "CA"},
	{Lat: 39.0997, Lon: -94.5786, City: "Kansas City", State: "MO"},
	{Lat: 28.5383, Lon: -81.3792, City: "Orlando", State: "FL"},
	{Lat: 33.7490, Lon: -84.3880, City: "Atlanta", State: "GA"},
	{Lat: 25.7617, Lon: -80.1918, City: "Miami", State: "FL"},
	{Lat: 27.9506, Lon: -82.4572, City: "Tampa", State: "FL"},
	{Lat: 29.9511, Lon: -90.0715, City: "New Orleans", State: "LA"},
	{Lat: 44.9778, Lon: -93.2650, City: "Minneapolis", State: "MN"},
	{Lat: 41.4993, Lon: -81.6944, City: "Cleveland", State: "OH"},
	{Lat: 39.1031, Lon: -84.5120, City: "Cincinnati", State: "OH"},
	{Lat: 40.4406, Lon: -79.9959, City: "Pittsburgh", State: "PA"},
	{Lat: 35.7796, Lon: -78.6382, City: "Raleigh", State: "NC"},
	{Lat: 37.5407, Lon: -77.4360, City: "Richmond", State: "VA"},
	{Lat: 38.6270, Lon: -90.1994, City: "St. Louis", State: "MO"},
	{Lat: 36.1540, Lon: -95.9928, City: "Tulsa", State: "OK"},
	{Lat: 41.2565, Lon: -95.9345, City: "Omaha", State: "NE"},
	{Lat: 43.6150, Lon: -116.2023, City: "Boise", State: "ID"},
	{Lat: 40.7608, Lon: -111.8910, City: "Salt Lake City", State: "UT"},
}
