package weather

// WindSummary is the stat block of the wind tab.
type WindSummary struct {
	CurrentSpeed  int         `json:"currentSpeed"`
	Direction     float64     `json:"direction"`
	DirectionName string      `json:"directionName"`
	AverageSpeed  int         `json:"averageSpeed"`
	MaxGust       int         `json:"maxGust"`
	Variability   Variability `json:"variability"`
}

// SummarizeWind aggregates the hourly wind entries. An empty window yields
// zero speeds, direction N and Low variability.
func SummarizeWind(entries []WindEntry) WindSummary {
	speeds := make([]float64, 0, len(entries))
	gusts := make([]float64, 0, len(entries))
	dirs := make([]float64, 0, len(entries))
	for _, e := range entries {
		speeds = append(speeds, float64(e.Speed))
		gusts = append(gusts, float64(e.Gust))
		dirs = append(dirs, e.Direction)
	}

	var sum WindSummary
	if len(entries) > 0 {
		sum.CurrentSpeed = entries[0].Speed
		sum.Direction = entries[0].Direction
	}
	sum.DirectionName = ResolveWindDirectionName(sum.Direction)
	sum.AverageSpeed = AverageWindSpeed(speeds)
	sum.MaxGust = int(MaxGust(gusts))
	sum.Variability = ResolveWindVariability(dirs)
	return sum
}

// PrecipitationSummary is the stat block of the precipitation tab.
type PrecipitationSummary struct {
	TotalMm        float64 `json:"totalMm"`
	MaxProbability int     `json:"maxProbability"`
}

// SummarizePrecipitation aggregates the hourly precipitation entries.
func SummarizePrecipitation(entries []PrecipitationEntry) PrecipitationSummary {
	amounts := make([]float64, 0, len(entries))
	probs := make([]float64, 0, len(entries))
	for _, e := range entries {
		amounts = append(amounts, e.Amount)
		probs = append(probs, float64(e.Probability))
	}
	return PrecipitationSummary{
		TotalMm:        TotalPrecipitation(amounts),
		MaxProbability: int(MaxPrecipitationProbability(probs)),
	}
}
