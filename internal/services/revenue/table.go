package revenue

import "fmt"

// estimates is read-only after package initialization. Lookups return copies.
var estimates = map[Tier]ChannelEstimates{
	Tier500KTo1M:  {Ads: 5500, CPA: 15000, Brands: 10000, Affiliate: 13500},
	Tier1MTo10M:   {Ads: 12000, CPA: 30000, Brands: 20000, Affiliate: 25000},
	Tier10MTo30M:  {Ads: 50000, CPA: 150000, Brands: 50000, Affiliate: 100000},
	Tier30MTo50M:  {Ads: 100000, CPA: 300000, Brands: 75000, Affiliate: 200000},
	Tier50MTo100M: {Ads: 200000, CPA: 500000, Brands: 100000, Affiliate: 300000},
}

var tierOrder = [...]TierInfo{
	{Tier: Tier500KTo1M, Label: "500K - 1M"},
	{Tier: Tier1MTo10M, Label: "1M - 10M"},
	{Tier: Tier10MTo30M, Label: "10M - 30M"},
	{Tier: Tier30MTo50M, Label: "30M - 50M"},
	{Tier: Tier50MTo100M, Label: "50M - 100M"},
}

var channelOrder = [...]Channel{ChannelAds, ChannelCPA, ChannelBrands, ChannelAffiliate}

// Tiers returns the known tiers in display order.
func Tiers() []TierInfo {
	out := make([]TierInfo, len(tierOrder))
	copy(out, tierOrder[:])
	return out
}

// Channels returns the channels in bar-chart order.
func Channels() []Channel {
	out := make([]Channel, len(channelOrder))
	copy(out, channelOrder[:])
	return out
}

// Lookup returns the channel estimates for a tier.
func Lookup(tier Tier) (ChannelEstimates, bool) {
	e, ok := estimates[tier]
	return e, ok
}

// ParseTier converts a raw identifier into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
	return t, nil
}
