package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/XRPL-Labs/xumm-payments/xrpl"
	"github.com/XRPL-Labs/xumm-payments/xumm"
)

// IsTrustLineRequired reports whether the merchant account still lacks
// a trust line for the configured issued currency.
func (e *Engine) IsTrustLineRequired(ctx context.Context) (bool, error) {
	return e.trustLineRequired(ctx, e.cfg.Account)
}

func (e *Engine) trustLineRequired(ctx context.Context, account string) (bool, error) {
	if e.cfg.Currency == xrpl.XRP {
		return false, nil
	}
	lines, err := e.ledger.ListTrustLines(ctx, account)
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if line.Account == e.cfg.Issuer && line.Currency == e.cfg.Currency {
			return false, nil
		}
	}
	return true, nil
}

// CreateTrustSetRequest submits a TrustSet sign-request establishing
// the configured currency's trust line on the merchant account.
func (e *Engine) CreateTrustSetRequest(ctx context.Context) (string, error) {
	tx := &trustSetTx{
		TransactionType: xumm.TxTypeTrustSet,
		Fee:             strconv.FormatInt(e.cfg.Fee, 10),
		LimitAmount:     xrpl.NewIssuedAmount(e.cfg.Currency, e.cfg.Issuer, decimal.RequireFromString(trustSetLimit)),
	}
	txjson, err := json.Marshal(tx)
	if err != nil {
		return "", errors.Wrap(err, "Failed marshal trust set transaction")
	}
	return e.createSettingsPayload(ctx, txjson, "Establish the trust line to accept payments.")
}

// CreateSignInRequest submits a SignIn sign-request used to pair the
// merchant's wallet and learn its account address.
func (e *Engine) CreateSignInRequest(ctx context.Context) (string, error) {
	txjson, err := json.Marshal(&signInTx{TransactionType: xumm.TxTypeSignIn})
	if err != nil {
		return "", errors.Wrap(err, "Failed marshal sign in transaction")
	}
	return e.createSettingsPayload(ctx, txjson, "Sign in to pair your wallet.")
}

// Settings payloads are correlated by a plain random identifier, they
// are not bound to any order.
func (e *Engine) createSettingsPayload(ctx context.Context, txjson json.RawMessage, instruction string) (string, error) {
	identifier := uuid.New().String()
	created, err := e.sign.CreatePayload(ctx, &xumm.CreatePayloadRequest{
		TxJSON: txjson,
		CustomMeta: &xumm.PayloadCustomMeta{
			Identifier:  identifier,
			Instruction: instruction,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "Failed create settings payload")
	}
	e.l.Info("Created settings sign request.", zap.String("identifier", identifier))
	return created.Next.Always, nil
}

// ProcessSettingsPayload applies the outcome of a SignIn or TrustSet
// sign-request to the merchant configuration. Unsigned payloads are
// ignored.
func (e *Engine) ProcessSettingsPayload(ctx context.Context, identifier string) error {
	payload, err := e.sign.GetPayloadByIdentifier(ctx, identifier)
	if err != nil {
		return errors.Wrapf(err, "Failed get payload %s", identifier)
	}
	if !xumm.ResolveStatus(payload).Settled() {
		return nil
	}

	isConfiguredAccount := payload.Response.Account == e.cfg.Account

	switch payload.Payload.TxType {
	case xumm.TxTypeSignIn:
		if isConfiguredAccount {
			return nil
		}
		if err := e.settings.SaveAccount(ctx, payload.Response.Account); err != nil {
			return errors.Wrap(err, "Failed save account")
		}
		e.notify.Success(fmt.Sprintf("Ledger address has been set to %s.", payload.Response.Account))

		required, err := e.trustLineRequired(ctx, payload.Response.Account)
		if err != nil {
			return err
		}
		if required {
			e.notify.Warning(fmt.Sprintf("Account %s has no trust line for %s.%s yet.",
				payload.Response.Account, e.cfg.Currency, e.cfg.Issuer))
		}
	case xumm.TxTypeTrustSet:
		if !isConfiguredAccount {
			e.notify.Error(fmt.Sprintf("Trust line was signed by %s instead of the configured %s.",
				payload.Response.Account, e.cfg.Account))
			return nil
		}
		if err := e.settings.SaveTrustLine(ctx, e.cfg.Currency, e.cfg.Issuer); err != nil {
			return errors.Wrap(err, "Failed save trust line")
		}
		e.notify.Success(fmt.Sprintf("Trust line for %s.%s has been established.", e.cfg.Currency, e.cfg.Issuer))
	}
	return nil
}
