package domain

import "time"

// RateTable holds the pricing and latency profile of a query-generation model.
type RateTable struct {
	Model                 string
	InputPer1KTokens      float64
	OutputPer1KTokens     float64
	BaseLatency           time.Duration
	LatencyPerOutputToken time.Duration
}

// CostEstimate is the projected cost of one generation call.
type CostEstimate struct {
	Model            string
	InputTokens      int
	OutputTokens     int
	InputCost        float64
	OutputCost       float64
	TotalCost        float64
	EstimatedLatency time.Duration
}
