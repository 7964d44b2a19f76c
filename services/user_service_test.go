package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-ratings-api/auth"
	"store-ratings-api/models"
)

func TestUserServiceCreate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	user, err := users.Create(validUserInput("alice@example.com"))
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "Johnathan Maxwell Reviewer", user.Name)
	assert.Equal(t, models.RoleNormalUser, user.Role)
	assert.Empty(t, user.PasswordHash, "returned record must not carry the hash")

	// Stored hash verifies against the original plaintext and is not
	// the plaintext itself.
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "Abcdefg1!", stored.PasswordHash)
	assert.True(t, auth.ComparePassword("Abcdefg1!", stored.PasswordHash))
}

func TestUserServiceCreateTrimsFields(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	in := validUserInput("trim@example.com")
	in.Name = "  Johnathan Maxwell Reviewer  "
	in.Address = "  1 Main St  "
	user, err := users.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Johnathan Maxwell Reviewer", user.Name)
	assert.Equal(t, "1 Main St", user.Address)
}

func TestUserServiceCreateValidationOrder(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	tests := []struct {
		name    string
		mutate  func(*CreateUserInput)
		message string
	}{
		{"bad name", func(in *CreateUserInput) { in.Name = "too short" }, "Name must be at least 20 characters long"},
		{"bad email", func(in *CreateUserInput) { in.Email = "not-an-email" }, "Invalid email format"},
		{"bad password", func(in *CreateUserInput) { in.Password = "weak" }, "Password must be at least 8 characters long"},
		{"bad address", func(in *CreateUserInput) { in.Address = "   " }, "Address is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validUserInput("order@example.com")
			tt.mutate(&in)

			_, err := users.Create(in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.message, vErr.Message)

			// No partial writes on failure.
			var count int64
			db.Model(&models.User{}).Count(&count)
			assert.Zero(t, count)
		})
	}
}

func TestUserServiceCreateInvalidNameBoundaries(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	for _, name := range []string{strings.Repeat("a", 19), strings.Repeat("a", 61)} {
		in := validUserInput("bound@example.com")
		in.Name = name
		_, err := users.Create(in)
		require.Error(t, err)
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	seedUser(t, users, "dup@example.com")
	_, err := users.Create(validUserInput("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUserServiceCreateEmailCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	seedUser(t, users, "case@example.com")
	// Uniqueness is exact-match; a different casing is a different email.
	_, err := users.Create(validUserInput("Case@example.com"))
	assert.NoError(t, err)
}

func TestUserServiceCreateInvalidRole(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	in := validUserInput("role@example.com")
	in.Role = models.Role("SUPERUSER")
	_, err := users.Create(in)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserServiceGetByID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	stores := NewStoreService(db)

	store := seedStore(t, stores, "shop@example.com")
	in := validUserInput("owner@example.com")
	in.Role = models.RoleStoreOwner
	in.StoreID = &store.ID
	created, err := users.Create(in)
	require.NoError(t, err)

	got, err := users.GetByID(created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash)
	require.NotNil(t, got.Store)
	assert.Equal(t, store.Name, got.Store.Name)

	_, err = users.GetByID(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceGetByEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	seedUser(t, users, "lookup@example.com")

	withoutPassword, err := users.GetByEmail("lookup@example.com", false)
	require.NoError(t, err)
	assert.Empty(t, withoutPassword.PasswordHash)

	withPassword, err := users.GetByEmail("lookup@example.com", true)
	require.NoError(t, err)
	assert.NotEmpty(t, withPassword.PasswordHash)

	_, err = users.GetByEmail("missing@example.com", false)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	user := seedUser(t, users, "pw@example.com")

	updated, err := users.UpdatePassword(user.ID, "Newpass1!")
	require.NoError(t, err)
	assert.Empty(t, updated.PasswordHash)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, auth.ComparePassword("Newpass1!", stored.PasswordHash))
	assert.False(t, auth.ComparePassword("Abcdefg1!", stored.PasswordHash))
}

func TestUserServiceUpdatePasswordFailures(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	user := seedUser(t, users, "pwfail@example.com")

	_, err := users.UpdatePassword(user.ID, "weak")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = users.UpdatePassword(99999, "Newpass1!")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.UpdatePassword(user.ID, "Abcdefg1!")
	assert.ErrorIs(t, err, ErrSamePassword)

	// Every failure path leaves the stored hash untouched.
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, auth.ComparePassword("Abcdefg1!", stored.PasswordHash))
}

func TestUserServiceList(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	in := validUserInput("bob@example.com")
	in.Name = "Robert Belmont Rating Fan"
	_, err := users.Create(in)
	require.NoError(t, err)

	in = validUserInput("carol@shops.net")
	in.Name = "Caroline Winters Shopkeeper"
	in.Role = models.RoleStoreOwner
	_, err = users.Create(in)
	require.NoError(t, err)

	all, err := users.List(UserFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, u := range all {
		assert.Empty(t, u.PasswordHash)
	}

	// Case-insensitive substring on name.
	byName, err := users.List(UserFilter{Name: "caroline"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "carol@shops.net", byName[0].Email)

	byEmail, err := users.List(UserFilter{Email: "EXAMPLE.COM"})
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)

	// Role is an exact match.
	owners, err := users.List(UserFilter{Role: models.RoleStoreOwner})
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, models.RoleStoreOwner, owners[0].Role)

	sorted, err := users.List(UserFilter{SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "Caroline Winters Shopkeeper", sorted[0].Name)
	assert.Equal(t, "Robert Belmont Rating Fan", sorted[1].Name)
}

func TestUserServiceDeleteCascadesRatings(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	stores := NewStoreService(db)
	ratings := NewRatingService(db)

	user := seedUser(t, users, "gone@example.com")
	store := seedStore(t, stores, "kept@example.com")
	_, err := ratings.Create(user.ID, store.ID, 5)
	require.NoError(t, err)

	require.NoError(t, users.Delete(user.ID))

	var count int64
	db.Model(&models.Rating{}).Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, users.Delete(user.ID), ErrUserNotFound)
}
