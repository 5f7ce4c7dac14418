package nodeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

const changePoolRefill = 10

// UTXOs snapshots a wallet's spendable outputs in the node's canonical
// order. The order matters: selections consume inputs strictly in it.
func (c *Client) UTXOs(ctx context.Context, walletID string) (inputs []model.Input, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("utxos", err, started)
	}()

	err = c.do(ctx, http.MethodGet, "/v2/wallets/"+url.PathEscape(walletID)+"/utxos", nil, &inputs)
	return inputs, err
}

// RewardWithdrawals reports the wallet's drainable reward balances as
// ready-made withdrawal entries.
func (c *Client) RewardWithdrawals(ctx context.Context, walletID string) (withdrawals []model.Withdrawal, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("reward_withdrawals", err, started)
	}()

	err = c.do(ctx, http.MethodGet, "/v2/wallets/"+url.PathEscape(walletID)+"/withdrawals", nil, &withdrawals)
	return withdrawals, err
}

type changeAddress struct {
	Address        string               `json:"address"`
	DerivationPath model.DerivationPath `json:"derivation_path"`
}

// changePool caches pre-derived change addresses per wallet so selection
// runs rarely wait on the node.
type changePool struct {
	mu    sync.Mutex
	addrs map[string][]changeAddress
}

// ChangeAddress hands out the next unused change address for a wallet,
// refilling the pool from the node when it runs dry.
func (c *Client) ChangeAddress(walletID string) (string, model.DerivationPath, error) {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()

	if c.pool.addrs == nil {
		c.pool.addrs = make(map[string][]changeAddress)
	}

	if len(c.pool.addrs[walletID]) == 0 {
		if err := c.refillChangePool(walletID); err != nil {
			return "", nil, err
		}
	}

	queue := c.pool.addrs[walletID]
	next := queue[0]
	c.pool.addrs[walletID] = queue[1:]
	return next.Address, next.DerivationPath, nil
}

func (c *Client) refillChangePool(walletID string) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("change_addresses", err, started)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), defaultRequestTimeout)
	defer cancel()

	var batch []changeAddress
	path := fmt.Sprintf("/v2/wallets/%s/addresses/change?count=%d", url.PathEscape(walletID), changePoolRefill)
	if err = c.do(ctx, http.MethodPost, path, nil, &batch); err != nil {
		return err
	}
	c.pool.addrs[walletID] = batch
	return nil
}
