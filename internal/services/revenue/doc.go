/*
Package revenue estimates partner revenue for a selected traffic tier.

The estimator owns a fixed table of monthly channel estimates (advertising,
CPA offers, brand deals and affiliate) for each of the five traffic tiers the
landing page offers. Estimate looks up a tier, totals its channels, computes the
partner's 30% share and the proportion each channel contributes:

	summary, err := revenue.Estimate(revenue.Tier1MTo10M)
	if errors.Is(err, revenue.ErrInvalidTier) {
	    // caller passed an identifier that is not in the table
	}

Present turns a Summary into the display model the page renders: formatted
dollar amounts, the share label and the bar widths with their transition.

Error Handling:

ErrInvalidTier is the only error. It is returned, wrapped with the offending
identifier, when the tier is not one of the five known bands.
*/
package revenue
