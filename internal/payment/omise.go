package payment

import (
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"github.com/wb-go/wbf/logger"
)

// OmiseCharger charges cards through the Omise API.
type OmiseCharger struct {
	client *omise.Client
}

func NewOmiseCharger(publicKey, secretKey string) (*OmiseCharger, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("create omise client: %w", err)
	}
	client.SetDebug(false)

	return &OmiseCharger{client: client}, nil
}

func (c *OmiseCharger) Charge(amountMinor int64, currency, cardToken string) (*ChargeResult, error) {
	charge := &omise.Charge{}
	req := &operations.CreateCharge{
		Amount:   amountMinor,
		Currency: currency,
		Card:     cardToken,
	}

	if err := c.client.Do(charge, req); err != nil {
		return nil, err
	}

	result := &ChargeResult{
		ID:        charge.ID,
		Succeeded: string(charge.Status) == "successful",
	}
	if charge.FailureMessage != nil {
		result.FailureMessage = *charge.FailureMessage
	}

	return result, nil
}

// SimulatedCharger approves every charge without touching a payment
// provider. Used when no Omise keys are configured, mirroring the demo
// checkout the web client ships with.
type SimulatedCharger struct {
	log logger.Logger
}

func NewSimulatedCharger(log logger.Logger) *SimulatedCharger {
	log.Warn("payment provider keys are empty, charges will be simulated")
	return &SimulatedCharger{log: log}
}

func (c *SimulatedCharger) Charge(amountMinor int64, currency, cardToken string) (*ChargeResult, error) {
	c.log.Info("simulated charge approved",
		logger.Int64("amount_minor", amountMinor),
		logger.String("currency", currency),
	)
	return &ChargeResult{ID: "sim_" + cardToken, Succeeded: true}, nil
}
