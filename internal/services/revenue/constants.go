package revenue

import "time"

// Traffic tiers, in the order the page lists them.
const (
	Tier500KTo1M  Tier = "500k-1m"
	Tier1MTo10M   Tier = "1m-10m"
	Tier10MTo30M  Tier = "10m-30m"
	Tier30MTo50M  Tier = "30m-50m"
	Tier50MTo100M Tier = "50m-100m"
)

// DefaultTier is selected when the page first loads.
const DefaultTier = Tier500KTo1M

// Channels, in bar-chart order.
const (
	ChannelAds       Channel = "ads"
	ChannelCPA       Channel = "cpa"
	ChannelBrands    Channel = "brands"
	ChannelAffiliate Channel = "affiliate"
)

// SharePercent is the portion of total revenue paid to the partner.
const SharePercent = 30

// Bar animation settings used by the page.
const (
	BarStartWidth  = "0%"
	BarTransition  = "width 0.8s cubic-bezier(0.4,0,0.2,1)"
	BarReflowDelay = 50 * time.Millisecond
)

// Element ids of the calculator's display nodes.
const (
	TotalElementID = "totalRevenue"
	ShareElementID = "yourShare"
)
