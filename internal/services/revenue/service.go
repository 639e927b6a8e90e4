package revenue

import "fmt"

// Estimate computes the revenue summary for a tier.
func Estimate(tier Tier) (Summary, error) {
	channels, ok := estimates[tier]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrInvalidTier, string(tier))
	}

	total := channels.Total()
	return Summary{
		Tier:        tier,
		Channels:    channels,
		Total:       total,
		UserShare:   Share(total),
		Proportions: proportionsOf(channels, total),
	}, nil
}

// Share returns SharePercent of total, rounded half up to a whole dollar.
func Share(total int64) int64 {
	return (total*SharePercent + 50) / 100
}

func proportionsOf(e ChannelEstimates, total int64) Proportions {
	if total <= 0 {
		return Proportions{}
	}
	t := float64(total)
	return Proportions{
		Ads:       float64(e.Ads) / t,
		CPA:       float64(e.CPA) / t,
		Brands:    float64(e.Brands) / t,
		Affiliate: float64(e.Affiliate) / t,
	}
}
