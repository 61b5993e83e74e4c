// Package account checks resolved federation accounts against the Stellar network.
package account

import (
	"context"
	"fmt"

	"github.com/stellar/go-stellar-sdk/clients/horizonclient"

	"github.com/marwen-abid/stellar-federation-go/errors"
)

// HorizonAccountChecker confirms accounts exist using a Horizon server.
type HorizonAccountChecker struct {
	client horizonclient.ClientInterface
}

// NewHorizonAccountChecker creates a checker backed by the given Horizon URL.
func NewHorizonAccountChecker(horizonURL string) *HorizonAccountChecker {
	return &HorizonAccountChecker{
		client: &horizonclient.Client{HorizonURL: horizonURL},
	}
}

// Summary is the part of a Horizon account the lookup tool reports.
type Summary struct {
	AccountID     string `json:"account_id"`
	Sequence      string `json:"sequence"`
	SubentryCount int32  `json:"subentry_count"`
	Balances      int    `json:"balances"`
}

// Check returns a summary of accountID, or ACCOUNT_NOT_FOUND when the account
// has not been created on the network.
func (c *HorizonAccountChecker) Check(_ context.Context, accountID string) (*Summary, error) {
	account, err := c.client.AccountDetail(horizonclient.AccountRequest{
		AccountID: accountID,
	})
	if err != nil {
		if horizonclient.IsNotFoundError(err) {
			return nil, errors.NewCoreError(errors.ACCOUNT_NOT_FOUND, fmt.Sprintf("account %s does not exist", accountID), err)
		}
		return nil, errors.NewClientError(errors.TRANSPORT_ERROR, fmt.Sprintf("failed to fetch account %s", accountID), err)
	}

	return &Summary{
		AccountID:     account.AccountID,
		Sequence:      fmt.Sprint(account.Sequence),
		SubentryCount: account.SubentryCount,
		Balances:      len(account.Balances),
	}, nil
}
