package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/project_marketplace/internal/models"
	"github.com/Skotchmaster/project_marketplace/internal/mykafka"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

type CartService struct {
	Repo      *repo.GormRepo
	Publisher Publisher
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) ([]models.CartItemView, error) {
	return s.Repo.ListCart(ctx, sessionID)
}

// AddItem always inserts a new row; adding the same project twice yields two lines.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req transport.AddToCartRequest) (*models.CartItem, error) {
	if req.ProjectID == 0 {
		return nil, fmt.Errorf("%w: project_id required", ErrValidation)
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	if _, err := s.Repo.GetProject(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d does not exist", ErrValidation, req.ProjectID)
		}
		return nil, err
	}

	item := &models.CartItem{
		ProjectID: req.ProjectID,
		Quantity:  req.Quantity,
		SessionID: sessionID,
	}
	if err := s.Repo.AddCartItem(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w: project %d does not exist", ErrValidation, req.ProjectID)
		}
		return nil, err
	}

	publish(ctx, s.Publisher, mykafka.TopicCartEvents, item.ID, map[string]any{
		"type":      "cart_item_added",
		"sessionID": sessionID,
		"projectID": item.ProjectID,
		"quantity":  item.Quantity,
	})
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, id uint) error {
	if err := s.Repo.RemoveCartItem(ctx, sessionID, id); err != nil {
		return notFound(err, fmt.Sprintf("cart item %d", id))
	}
	publish(ctx, s.Publisher, mykafka.TopicCartEvents, id, map[string]any{
		"type":      "cart_item_removed",
		"sessionID": sessionID,
		"itemID":    id,
	})
	return nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (int64, error) {
	n, err := s.Repo.ClearCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	publish(ctx, s.Publisher, mykafka.TopicCartEvents, 0, map[string]any{
		"type":      "cart_cleared",
		"sessionID": sessionID,
		"removed":   n,
	})
	return n, nil
}
