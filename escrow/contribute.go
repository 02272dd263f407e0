package escrow

import (
	"context"

	"github.com/shopspring/decimal"
)

// Contribute adds amount to the contributor's running total for the
// campaign. Repeat contributions are additive top-ups: the contributor
// appears exactly once in the backer list and owns a single cumulative
// amount, which is also what a refund pays back
func (e *Escrow) Contribute(
	ctx context.Context, campaignID int64, contributor string, amount decimal.Decimal,
) error {
	if contributor == "" {
		return ErrEmptyContributor
	}
	if amount.Sign() <= 0 {
		return ErrZeroContribution
	}
	if !amount.IsInteger() {
		return ErrNonIntegerContribution
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	st, err := e.getLocked(campaignID)
	if err != nil {
		return err
	}
	if _, busy := e.inFlight[campaignID]; busy {
		return ErrReentrantCall
	}
	if !e.timer.Now().Before(st.campaign.Deadline) {
		return ErrCampaignEnded
	}
	if st.campaign.FundsReleased {
		return ErrAlreadySettled
	}

	prev, existed := st.contributions[contributor]
	total := prev.Add(amount)
	raised := st.campaign.AmountRaised.Add(amount)

	err = e.sink.ContributionMade(ctx, ContributionMadeEvent{
		CampaignID:  campaignID,
		Contributor: contributor,
		Amount:      amount,
		Total:       total,
		Raised:      raised,
	})
	if err != nil {
		return err
	}

	st.contributions[contributor] = total
	if !existed {
		st.backers = append(st.backers, contributor)
	}
	st.campaign.AmountRaised = raised
	return nil
}

// GetBackers returns contributor addresses in first-contribution order,
// without duplicates
func (e *Escrow) GetBackers(campaignID int64) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, err := e.getLocked(campaignID)
	if err != nil {
		return nil, err
	}

	result := make([]string, len(st.backers))
	copy(result, st.backers)
	return result, nil
}

// GetContribution returns the cumulative amount the contributor has put
// into the campaign, zero if it never contributed
func (e *Escrow) GetContribution(campaignID int64, contributor string) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, err := e.getLocked(campaignID)
	if err != nil {
		return decimal.Zero, err
	}

	amount, ok := st.contributions[contributor]
	if !ok {
		return decimal.Zero, nil
	}
	return amount, nil
}
