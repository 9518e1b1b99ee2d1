package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/project_marketplace/internal/db/dbtest"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

func TestCart_SessionIsolationAndNoMerge(t *testing.T) {
	db := dbtest.Open(t)
	svc := &CartService{Repo: repo.New(db)}
	p := seedProject(t, db, "Weather Station", 300)
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "alice", transport.AddToCartRequest{ProjectID: p.ID})
	require.NoError(t, err)
	require.Equal(t, 1, first.Quantity)
	_, err = svc.AddItem(ctx, "alice", transport.AddToCartRequest{ProjectID: p.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "bob", transport.AddToCartRequest{ProjectID: p.ID})
	require.NoError(t, err)

	alice, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 2)
	require.Equal(t, "Weather Station", alice[0].Topic)
	require.EqualValues(t, 300, alice[0].Price)

	require.ErrorIs(t, svc.RemoveItem(ctx, "bob", first.ID), ErrNotFound)
	require.NoError(t, svc.RemoveItem(ctx, "alice", first.ID))

	n, err := svc.Clear(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	bob, err := svc.GetCart(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bob, 1)
}

func TestCart_AddValidation(t *testing.T) {
	svc := &CartService{Repo: repo.New(dbtest.Open(t))}

	_, err := svc.AddItem(context.Background(), "s", transport.AddToCartRequest{})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddItem(context.Background(), "s", transport.AddToCartRequest{ProjectID: 404})
	require.ErrorIs(t, err, ErrValidation)
}
