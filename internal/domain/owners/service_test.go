package owners

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic-customers/internal/domain/pets"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testRepo struct {
	nextID int
	byID   map[int]Owner
	err    error
}

func newTestRepo() *testRepo {
	return &testRepo{nextID: 1, byID: map[int]Owner{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) (Owner, error) {
	if r.err != nil {
		return Owner{}, r.err
	}
	o.ID = r.nextID
	r.nextID++
	r.byID[o.ID] = o
	return o, nil
}

func (r *testRepo) Update(ctx context.Context, o Owner) error {
	if _, ok := r.byID[o.ID]; !ok {
		return ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (Owner, error) {
	if r.err != nil {
		return Owner{}, r.err
	}
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	out := make([]Owner, 0, len(r.byID))
	for id := 1; id < r.nextID; id++ {
		if o, ok := r.byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

type petsStub []pets.Pet

func (p petsStub) ListByOwner(ctx context.Context, ownerID int) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for _, pet := range p {
		if pet.OwnerID == ownerID {
			out = append(out, pet)
		}
	}
	return out, nil
}

func (p petsStub) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return p, nil
}

func validInput() SaveInput {
	return SaveInput{
		FirstName: " George ",
		LastName:  "Franklin",
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_TrimsAndAssignsID(t *testing.T) {
	svc := NewService(newTestRepo(), petsStub{}, nil)

	o, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, o.ID)
	assert.Equal(t, "George", o.FirstName)
	assert.NotNil(t, o.Pets)
}

func TestService_Create_RejectsBlankFields(t *testing.T) {
	svc := NewService(newTestRepo(), petsStub{}, nil)

	in := validInput()
	in.City = "   "
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, petsStub{}, nil)
	ctx := context.Background()

	o, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.City = "Sun Prairie"
	updated, err := svc.Update(ctx, o.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Sun Prairie", updated.City)
	assert.Equal(t, "Sun Prairie", repo.byID[o.ID].City)

	_, err = svc.Update(ctx, 99, in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetByID_LoadsPets(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, petsStub{
		{ID: 1, OwnerID: 1, Name: "Leo"},
		{ID: 2, OwnerID: 2, Name: "Basil"},
	}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	o, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, o.Pets, 1)
	assert.Equal(t, "Leo", o.Pets[0].Name)

	_, err = svc.GetByID(ctx, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_GroupsPetsByOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, petsStub{
		{ID: 1, OwnerID: 1, Name: "Leo"},
		{ID: 3, OwnerID: 2, Name: "Rosy"},
		{ID: 4, OwnerID: 2, Name: "Jewel"},
	}, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Len(t, items[0].Pets, 1)
	assert.Len(t, items[1].Pets, 2)
	assert.Empty(t, items[2].Pets)
}

func TestService_Exists(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, petsStub{}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	repo.err = errors.New("db down")
	_, err = svc.Exists(ctx, 1)
	assert.Error(t, err)
}
