package ortb

import (
	"fmt"

	"github.com/prebid/ortb-builder/openrtb26"
)

func validatePmp(pmp *openrtb26.PMP, path string) []error {
	if pmp == nil {
		return nil
	}

	var errL []error
	errL = append(errL, validateFlag(pmp.PrivateAuction, path+".private_auction")...)

	dealIDs := make(map[string]struct{}, len(pmp.Deals))
	for i := range pmp.Deals {
		deal := &pmp.Deals[i]
		dealPath := fmt.Sprintf("%s.deals[%d]", path, i)

		if deal.ID == "" {
			errL = append(errL, missingField(dealPath, "id"))
		} else if _, ok := dealIDs[deal.ID]; ok {
			errL = append(errL, invalid("%s.id %q is not unique within %s.deals", dealPath, deal.ID, path))
		} else {
			dealIDs[deal.ID] = struct{}{}
		}

		errL = append(errL, validateNonNegativeFloat(deal.BidFloor, dealPath+".bidfloor")...)
		if deal.BidFloorCur != "" {
			errL = append(errL, validateCurrency(deal.BidFloorCur, dealPath+".bidfloorcur")...)
		}
		errL = append(errL, validateRange(deal.AT, 1, 3, dealPath+".at")...)
		errL = append(errL, validateFlag(deal.Guar, dealPath+".guar")...)
		errL = append(errL, validateNonNegativeFloat(deal.MinCPMPerSec, dealPath+".mincpmpersec")...)
	}

	return errL
}
