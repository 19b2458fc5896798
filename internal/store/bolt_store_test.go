// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStore_Contract(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "db", "bags.db"), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	storeContract(t, s)
}

func TestBoltStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bags.db")

	s, err := NewBoltStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.PutItem(context.Background(), "nexus", sealedItem("license")))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(path, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetItem(context.Background(), "nexus", "license")
	require.NoError(t, err)
	assert.Equal(t, sealedItem("license").Fields, got.Fields)
	assert.False(t, got.UpdatedAt.IsZero())
}
