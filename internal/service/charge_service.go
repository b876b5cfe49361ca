package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/BrunoMartendal/webhook-pix2/internal/brcode"
	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/metrics"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/models/dto"
	"github.com/BrunoMartendal/webhook-pix2/internal/processor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProcessorClient interface {
	CreateCharge(ctx context.Context, req processor.ChargeRequest) (*processor.Charge, error)
}

type ChargeSettings struct {
	DefaultCurrency string
	MerchantName    string
	MerchantCity    string
	// QRRenderURL is an external image service; the BR Code is appended
	// query-escaped.
	QRRenderURL string
}

// ChargeService issues payment requests. With a processor configured the
// charge is created there; otherwise a static BR Code is built locally.
type ChargeService struct {
	Keys         KeyRepo
	Transactions TransactionRepo
	Processor    ProcessorClient
	Settings     ChargeSettings
}

func NewChargeService(keys KeyRepo, transactions TransactionRepo, processor ProcessorClient, settings ChargeSettings) *ChargeService {
	return &ChargeService{
		Keys:         keys,
		Transactions: transactions,
		Processor:    processor,
		Settings:     settings,
	}
}

func (s *ChargeService) CreateCharge(ctx context.Context, chargeDTO *dto.Charge) (*dto.ChargeResult, error) {
	chargeDTO.Sanitize(s.Settings.DefaultCurrency)
	tx := chargeDTO.ToEntity()
	if tx.KeyID == "" {
		return nil, errs.Validation("key ID is required")
	}
	if !tx.Amount.IsPositive() {
		return nil, errs.Validation("amount must be greater than zero")
	}
	if !tx.Currency.IsValid() {
		return nil, errs.Validation("invalid currency: %s", tx.Currency)
	}

	key, err := s.Keys.GetByID(ctx, tx.KeyID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(err, "payment key %s", tx.KeyID)
		}
		return nil, err
	}

	result := &dto.ChargeResult{}
	source := "static"
	if s.Processor != nil {
		source = "openpix"
		if err := s.fromProcessor(ctx, chargeDTO, tx, result); err != nil {
			return nil, err
		}
	} else if err := s.fromStaticCode(chargeDTO, key, tx, result); err != nil {
		return nil, err
	}

	if result.QRCodeURL == "" && s.Settings.QRRenderURL != "" {
		result.QRCodeURL = s.Settings.QRRenderURL + url.QueryEscape(result.BRCode)
	}

	if err := tx.Validate(); err != nil {
		return nil, errs.Validation("%s", err.Error())
	}
	if err := s.Transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	result.Transaction = tx

	metrics.ChargesTotal.WithLabelValues(string(tx.Currency), source).Inc()
	logrus.WithFields(logrus.Fields{
		"processor_transaction_id": tx.ProcessorTransactionID,
		"key_id":                   key.ID,
		"source":                   source,
	}).Infof("payment request issued for %s", tx.Amount.StringFixed(2))
	return result, nil
}

func (s *ChargeService) fromProcessor(ctx context.Context, chargeDTO *dto.Charge, tx *models.Transaction, result *dto.ChargeResult) error {
	correlationID := uuid.New().String()
	charge, err := s.Processor.CreateCharge(ctx, processor.ChargeRequest{
		CorrelationID: correlationID,
		Value:         tx.Amount.Mul(decimal.NewFromInt(100)).IntPart(),
		Comment:       chargeDTO.Comment,
	})
	if err != nil {
		return errs.Wrap(err, "create processor charge")
	}

	tx.CorrelationID = correlationID
	tx.ProcessorTransactionID = charge.TransactionID
	if tx.ProcessorTransactionID == "" {
		tx.ProcessorTransactionID = correlationID
	}
	result.BRCode = charge.BRCode
	result.QRCodeURL = charge.QRCodeImage
	return nil
}

func (s *ChargeService) fromStaticCode(chargeDTO *dto.Charge, key *models.PaymentKey, tx *models.Transaction, result *dto.ChargeResult) error {
	// the static code only carries 25 alphanumerics, so the id is cut to fit
	// and reused as both correlation and transaction id
	txid := brcode.TxID(strings.ReplaceAll(uuid.New().String(), "-", ""))
	code, err := brcode.Payload{
		Key:          key.KeyValue,
		Description:  chargeDTO.Comment,
		MerchantName: s.Settings.MerchantName,
		MerchantCity: s.Settings.MerchantCity,
		Amount:       tx.Amount,
		TxID:         txid,
	}.Build()
	if err != nil {
		return errs.Validation("%s", err.Error())
	}

	tx.CorrelationID = txid
	tx.ProcessorTransactionID = txid
	result.BRCode = code
	return nil
}

func (s *ChargeService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.Transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return *txs, nil
}
