package revenue

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are always formatted for a single locale.
var locale = language.AmericanEnglish

// View is the display model of a Summary.
type View struct {
	Tier        Tier        `json:"tier"`
	Amounts     []AmountRow `json:"amounts"`
	Total       Label       `json:"total"`
	Share       Label       `json:"share"`
	Bars        []Bar       `json:"bars"`
	Transition  string      `json:"transition"`
	StartWidth  string      `json:"start_width"`
	DelayMillis int64       `json:"delay_ms"`
}

// Label is a formatted value bound to a display element.
type Label struct {
	ElementID string `json:"element_id"`
	Text      string `json:"text"`
}

// AmountRow is one channel's formatted amount.
type AmountRow struct {
	Channel Channel `json:"channel"`
	Label
}

// Bar is one channel's proportional bar.
type Bar struct {
	Channel   Channel `json:"channel"`
	ElementID string  `json:"element_id"`
	Width     string  `json:"width"`
}

// Present formats a summary for display.
func Present(s Summary) View {
	p := message.NewPrinter(locale)

	v := View{
		Tier:        s.Tier,
		Amounts:     make([]AmountRow, 0, len(channelOrder)),
		Bars:        make([]Bar, 0, len(channelOrder)),
		Transition:  BarTransition,
		StartWidth:  BarStartWidth,
		DelayMillis: BarReflowDelay.Milliseconds(),
		Total: Label{
			ElementID: TotalElementID,
			Text:      formatDollars(p, s.Total),
		},
		Share: Label{
			ElementID: ShareElementID,
			Text:      formatDollars(p, s.UserShare) + "/month",
		},
	}

	for _, ch := range channelOrder {
		v.Amounts = append(v.Amounts, AmountRow{
			Channel: ch,
			Label: Label{
				ElementID: string(ch) + "Amount",
				Text:      formatDollars(p, s.Channels.Value(ch)),
			},
		})
		v.Bars = append(v.Bars, Bar{
			Channel:   ch,
			ElementID: string(ch) + "Bar",
			Width:     BarWidth(s.Proportions.Value(ch)),
		})
	}
	return v
}

// FormatAmount renders a whole-dollar amount with thousands separators.
func FormatAmount(amount int64) string {
	return formatDollars(message.NewPrinter(locale), amount)
}

// BarWidth renders a proportion as a CSS percentage.
func BarWidth(proportion float64) string {
	if proportion <= 0 {
		return BarStartWidth
	}
	return strconv.FormatFloat(proportion*100, 'f', -1, 64) + "%"
}

func formatDollars(p *message.Printer, amount int64) string {
	return "$" + p.Sprintf("%d", amount)
}
