package nodeclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/assembly"
	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

// Sign asks the node to sign assembled transaction parameters. The
// passphrase travels inside the parameters and is never logged.
func (c *Client) Sign(ctx context.Context, params assembly.TransactionParams) (signed model.SignedTransaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("sign", err, started)
	}()

	err = c.do(ctx, http.MethodPost, "/v2/transactions/sign", params, &signed)
	return signed, err
}

type submitRequest struct {
	Blob []byte `json:"blob"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// Submit broadcasts a signed transaction and returns its id.
func (c *Client) Submit(ctx context.Context, blob []byte) (txID string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit", err, started)
	}()

	var resp submitResponse
	if err = c.do(ctx, http.MethodPost, "/v2/transactions", submitRequest{Blob: blob}, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Forget retracts a submitted transaction the node still holds as
// pending.
func (c *Client) Forget(ctx context.Context, walletID, txID string) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("forget", err, started)
	}()

	path := "/v2/wallets/" + url.PathEscape(walletID) + "/transactions/" + url.PathEscape(txID)
	err = c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}
