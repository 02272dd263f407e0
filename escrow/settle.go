package escrow

import (
	"context"

	"github.com/shopspring/decimal"
)

type payout struct {
	to     string
	amount decimal.Decimal
}

// ReleaseOrRefund settles an ended campaign, callable by anyone.
// If the goal was reached the whole amount raised goes to the creator
// in one transfer, otherwise every backer gets its recorded amount
// back, in first-contribution order.
//
// The FundsReleased latch is flipped before any transfer. A call
// arriving during one of the transfers therefore observes the campaign
// as settled even if it were to slip past the in-flight guard. If any
// transfer or the event sink fails, the latch is rolled back and the
// campaign stays settleable by a future call
func (e *Escrow) ReleaseOrRefund(ctx context.Context, campaignID int64) error {
	e.mu.Lock()
	st, err := e.getLocked(campaignID)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	if _, busy := e.inFlight[campaignID]; busy {
		e.mu.Unlock()
		return ErrReentrantCall
	}
	if e.timer.Now().Before(st.campaign.Deadline) {
		e.mu.Unlock()
		return ErrCampaignNotEnded
	}
	if st.campaign.FundsReleased {
		e.mu.Unlock()
		return ErrAlreadySettled
	}

	st.campaign.FundsReleased = true
	e.inFlight[campaignID] = struct{}{}

	released := st.campaign.GoalReached()
	creator := st.campaign.Creator
	raised := st.campaign.AmountRaised

	var payouts []payout
	if released {
		payouts = append(payouts, payout{to: creator, amount: raised})
	} else {
		for _, backer := range st.backers {
			payouts = append(payouts, payout{to: backer, amount: st.contributions[backer]})
		}
	}

	// the lock is not held across transfers: the port may run
	// arbitrary recipient code, the in-flight guard takes over
	e.mu.Unlock()

	abort := func(cause error) error {
		e.mu.Lock()
		st.campaign.FundsReleased = false
		delete(e.inFlight, campaignID)
		e.mu.Unlock()
		return cause
	}

	total := decimal.Zero
	for _, p := range payouts {
		if err := e.port.Transfer(ctx, p.to, p.amount); err != nil {
			return abort(&TransferError{To: p.to, Amount: p.amount, Err: err})
		}
		total = total.Add(p.amount)
	}

	if released {
		err = e.sink.FundsReleased(ctx, FundsReleasedEvent{
			CampaignID: campaignID,
			Creator:    creator,
			Amount:     raised,
		})
	} else {
		err = e.sink.RefundIssued(ctx, RefundIssuedEvent{
			CampaignID:    campaignID,
			TotalRefunded: total,
		})
	}
	if err != nil {
		return abort(err)
	}

	e.mu.Lock()
	delete(e.inFlight, campaignID)
	e.mu.Unlock()
	return nil
}
