package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillcycle/internal/domain"
	"skillcycle/internal/dto"
	"skillcycle/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_Submit(t *testing.T) {
	svc := NewContactService(mustCatalog(t)).(*contactService)
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.FixedZone("SAST", 2*60*60))
	svc.now = func() time.Time { return fixed }

	resp, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:         "Sipho Dlamini",
		Email:        "sipho@example.co.za",
		Organization: "Khayelitsha Learning Hub",
		Type:         "volunteer",
		Message:      "I would love to help refurbish devices.",
	})
	require.NoError(t, err)
	assert.True(t, util.IsULID(resp.Reference))
	assert.Equal(t, contactAcknowledgement, resp.Message)
	assert.Equal(t, fixed.UTC(), resp.ReceivedAt)
}

func TestContactService_SubmitInvalid(t *testing.T) {
	svc := NewContactService(mustCatalog(t))

	resp, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "S",
		Email:   "not-an-email",
		Type:    "spam",
		Message: "short",
	})
	assert.Nil(t, resp)
	require.Error(t, err)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
}
