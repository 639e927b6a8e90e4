package revenue

// Tier identifies a band of monthly audience volume.
type Tier string

func (t Tier) String() string {
	return string(t)
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	_, ok := estimates[t]
	return ok
}

// Channel is a monetization category.
type Channel string

// ChannelEstimates holds the monthly revenue estimate of each channel, in
// whole dollars.
type ChannelEstimates struct {
	Ads       int64 `json:"ads"`
	CPA       int64 `json:"cpa"`
	Brands    int64 `json:"brands"`
	Affiliate int64 `json:"affiliate"`
}

// Value returns the estimate for a single channel.
func (e ChannelEstimates) Value(ch Channel) int64 {
	switch ch {
	case ChannelAds:
		return e.Ads
	case ChannelCPA:
		return e.CPA
	case ChannelBrands:
		return e.Brands
	case ChannelAffiliate:
		return e.Affiliate
	default:
		return 0
	}
}

// Total is the sum of the four channels.
func (e ChannelEstimates) Total() int64 {
	return e.Ads + e.CPA + e.Brands + e.Affiliate
}

// Proportions holds each channel's fraction of the total.
type Proportions struct {
	Ads       float64 `json:"ads"`
	CPA       float64 `json:"cpa"`
	Brands    float64 `json:"brands"`
	Affiliate float64 `json:"affiliate"`
}

// Value returns the proportion for a single channel.
func (p Proportions) Value(ch Channel) float64 {
	switch ch {
	case ChannelAds:
		return p.Ads
	case ChannelCPA:
		return p.CPA
	case ChannelBrands:
		return p.Brands
	case ChannelAffiliate:
		return p.Affiliate
	default:
		return 0
	}
}

// Sum adds the four proportions.
func (p Proportions) Sum() float64 {
	return p.Ads + p.CPA + p.Brands + p.Affiliate
}

// Summary is the result of an estimate for one tier.
type Summary struct {
	Tier        Tier             `json:"tier"`
	Channels    ChannelEstimates `json:"channels"`
	Total       int64            `json:"total"`
	UserShare   int64            `json:"user_share"`
	Proportions Proportions      `json:"proportions"`
}

// TierInfo describes a tier for selection lists.
type TierInfo struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
}
