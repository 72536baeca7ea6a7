package dto

import "github.com/pawhaven/pawhaven/internal/service"

// StatsResponse is the aggregate snapshot returned by the stats endpoint.
type StatsResponse struct {
	DogsAvailable  int64 `json:"dogsAvailable"`
	CustomersCount int64 `json:"customersCount"`
	DogsAdopted    int64 `json:"dogsAdopted"`
}

// ToStatsResponse converts the service aggregate to its response shape.
func ToStatsResponse(stats *service.Stats) StatsResponse {
	return StatsResponse{
		DogsAvailable:  stats.DogsAvailable,
		CustomersCount: stats.CustomersCount,
		DogsAdopted:    stats.DogsAdopted,
	}
}
