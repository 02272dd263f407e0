package escrow

import (
	"fmt"
	"sort"

	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
)

// Restore rebuilds the arena from persisted campaigns and cumulative
// contribution records. Contributions must arrive in first-contribution
// order, it becomes the backer ordering used for refunds
func (e *Escrow) Restore(campaigns []model.Campaign, contributions []model.Contribution) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.campaigns) > 0 {
		return fmt.Errorf("escrow already holds %d campaigns", len(e.campaigns))
	}

	sorted := make([]model.Campaign, len(campaigns))
	copy(sorted, campaigns)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	states := make([]*campaignState, 0, len(sorted))
	for index, campaign := range sorted {
		if campaign.ID != int64(index)+1 {
			return fmt.Errorf("campaign ids are not sequential, found: %d", campaign.ID)
		}
		states = append(states, &campaignState{
			campaign:      campaign,
			contributions: map[string]decimal.Decimal{},
		})
	}

	for _, contribution := range contributions {
		id := contribution.CampaignID
		if id < 1 || id > int64(len(states)) {
			return fmt.Errorf("contribution references unknown campaign: %d", id)
		}
		st := states[id-1]

		if _, existed := st.contributions[contribution.Contributor]; existed {
			return fmt.Errorf(
				"duplicated contribution record for campaign %d, contributor %q",
				id, contribution.Contributor,
			)
		}
		st.contributions[contribution.Contributor] = contribution.Amount
		st.backers = append(st.backers, contribution.Contributor)
	}

	for _, st := range states {
		sum := decimal.Zero
		for _, backer := range st.backers {
			sum = sum.Add(st.contributions[backer])
		}
		if !sum.Equal(st.campaign.AmountRaised) {
			return fmt.Errorf(
				"campaign %d amount raised is %s but contributions sum to %s",
				st.campaign.ID, st.campaign.AmountRaised, sum,
			)
		}
	}

	e.campaigns = states
	return nil
}
