package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

var (
	ErrRateOrderCommandIsNotConstructed = errors.New(
		"RateOrderCommand must be created via NewRateOrderCommand constructor",
	)
	ErrItemScoresAreRequired = errors.New("at least one item score is required")
)

// ItemScoreRequest scores one line of the rated order.
type ItemScoreRequest struct {
	ItemID kernel.UUID
	Score  kernel.Rating
}

// RateOrderCommand represents a customer's one-shot review of a completed
// order: a score for the merchant, the platform, the rider, and every item.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerUserID kernel.UUID
	merchantScore  kernel.Rating
	platformScore  kernel.Rating
	riderScore     *kernel.Rating
	itemScores     []ItemScoreRequest
	comment        string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to review an order. The rider score
// is optional at this stage; whether the order requires one is decided
// against the order itself.
func NewRateOrderCommand(
	orderID, customerUserID kernel.UUID,
	merchantScore, platformScore kernel.Rating,
	riderScore *kernel.Rating,
	itemScores []ItemScoreRequest,
	comment string,
) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerUserID(customerUserID),
		cmd.setMerchantScore(merchantScore),
		cmd.setPlatformScore(platformScore),
		cmd.setRiderScore(riderScore),
		cmd.setItemScores(itemScores),
	); err != nil {
		return RateOrderCommand{}, err
	}

	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the order being reviewed.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerUserID returns the reviewing user's account identifier.
func (c RateOrderCommand) CustomerUserID() kernel.UUID {
	return c.customerUserID
}

// MerchantScore returns the merchant's score.
func (c RateOrderCommand) MerchantScore() kernel.Rating {
	return c.merchantScore
}

// PlatformScore returns the platform's score.
func (c RateOrderCommand) PlatformScore() kernel.Rating {
	return c.platformScore
}

// RiderScore returns the rider's score, or nil when none was given.
func (c RateOrderCommand) RiderScore() *kernel.Rating {
	return c.riderScore
}

// ItemScores returns the per-item scores.
func (c RateOrderCommand) ItemScores() []ItemScoreRequest {
	return c.itemScores
}

// Comment returns the free-text remark.
func (c RateOrderCommand) Comment() string {
	return c.comment
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setCustomerUserID(customerUserID kernel.UUID) error {
	if err := customerUserID.Validate(); err != nil {
		return err
	}

	c.customerUserID = customerUserID
	return nil
}

func (c *RateOrderCommand) setMerchantScore(score kernel.Rating) error {
	if err := score.Validate(); err != nil {
		return err
	}

	c.merchantScore = score
	return nil
}

func (c *RateOrderCommand) setPlatformScore(score kernel.Rating) error {
	if err := score.Validate(); err != nil {
		return err
	}

	c.platformScore = score
	return nil
}

func (c *RateOrderCommand) setRiderScore(score *kernel.Rating) error {
	if score == nil {
		return nil
	}
	if err := score.Validate(); err != nil {
		return err
	}

	c.riderScore = score
	return nil
}

func (c *RateOrderCommand) setItemScores(itemScores []ItemScoreRequest) error {
	if len(itemScores) == 0 {
		return ErrItemScoresAreRequired
	}

	for _, item := range itemScores {
		if err := errors.Join(item.ItemID.Validate(), item.Score.Validate()); err != nil {
			return err
		}
	}

	c.itemScores = itemScores
	return nil
}
