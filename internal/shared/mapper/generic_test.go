package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uint
	Value int
}

type entity struct {
	Value int
}

func TestMapSlicePtrWithID(t *testing.T) {
	rows := []*row{{ID: 1, Value: 10}, nil, {ID: 2, Value: 20}}

	got, err := MapSlicePtrWithID(rows,
		func(r *row) (*entity, error) { return &entity{Value: r.Value}, nil },
		func(r *row) uint { return r.ID },
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Value)
	assert.Equal(t, 20, got[1].Value)
}

func TestMapSlicePtrWithID_NilSlice(t *testing.T) {
	got, err := MapSlicePtrWithID(nil,
		func(r *row) (*entity, error) { return &entity{}, nil },
		func(r *row) uint { return r.ID },
	)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMapSlicePtrWithID_ErrorCarriesID(t *testing.T) {
	rows := []*row{{ID: 7, Value: -1}}
	bad := errors.New("negative value")

	_, err := MapSlicePtrWithID(rows,
		func(r *row) (*entity, error) { return nil, bad },
		func(r *row) uint { return r.ID },
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, bad)
	assert.Contains(t, err.Error(), "7")
}

func TestMapSlicePtrWithID_SkipsNilOutput(t *testing.T) {
	rows := []*row{{ID: 1, Value: 10}, {ID: 2, Value: 0}}

	got, err := MapSlicePtrWithID(rows,
		func(r *row) (*entity, error) {
			if r.Value == 0 {
				return nil, nil
			}
			return &entity{Value: r.Value}, nil
		},
		func(r *row) uint { return r.ID },
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Value)
}
