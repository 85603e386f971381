package mattermost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateUserSort(t *testing.T) {
	t.Run("Should accept team-scoped sorts", func(t *testing.T) {
		for _, sort := range []string{"last_activity_at", "created_at", "username"} {
			wire, err := ValidateUserSort(&UserListQuery{Sort: sort, InTeam: strPtr("T1")})
			require.NoError(t, err, sort)
			if sort == "username" {
				assert.Equal(t, "", wire)
			} else {
				assert.Equal(t, sort, wire)
			}
		}
	})

	t.Run("Should accept channel-scoped sorts", func(t *testing.T) {
		wire, err := ValidateUserSort(&UserListQuery{Sort: "status", InChannel: strPtr("C1")})
		require.NoError(t, err)
		assert.Equal(t, "status", wire)
	})

	t.Run("Should skip validation when sort is unset", func(t *testing.T) {
		wire, err := ValidateUserSort(&UserListQuery{})
		require.NoError(t, err)
		assert.Equal(t, "", wire)
	})

	t.Run("Should require a scope when sorting", func(t *testing.T) {
		_, err := ValidateUserSort(&UserListQuery{Sort: "status"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scope required for sort")
	})

	t.Run("Should reject channel sorts under team scope", func(t *testing.T) {
		_, err := ValidateUserSort(&UserListQuery{Sort: "status", InTeam: strPtr("T1")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "team scope")
	})

	t.Run("Should reject team sorts under channel scope", func(t *testing.T) {
		_, err := ValidateUserSort(&UserListQuery{Sort: "created_at", InChannel: strPtr("C1")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel scope")
	})

	t.Run("Should reject an empty channel scope unless sorting by username", func(t *testing.T) {
		_, err := ValidateUserSort(&UserListQuery{Sort: "status", InChannel: strPtr("")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel scope must be non-empty")
	})

	t.Run("Should reject an empty team scope unless sorting by username", func(t *testing.T) {
		_, err := ValidateUserSort(&UserListQuery{Sort: "created_at", InTeam: strPtr("")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "team scope must be non-empty")
	})

	t.Run("Should allow username sort with an empty scope and normalize it", func(t *testing.T) {
		wire, err := ValidateUserSort(&UserListQuery{Sort: "username", InTeam: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "", wire)
	})

	t.Run("Should snake-case UI labels before matching", func(t *testing.T) {
		wire, err := ValidateUserSort(&UserListQuery{Sort: "Last Activity At", InTeam: strPtr("T1")})
		require.NoError(t, err)
		assert.Equal(t, "last_activity_at", wire)
	})

	t.Run("Should validate both scopes when both are set", func(t *testing.T) {
		wire, err := ValidateUserSort(&UserListQuery{
			Sort:      "username",
			InTeam:    strPtr("T1"),
			InChannel: strPtr("C1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "", wire)

		_, err = ValidateUserSort(&UserListQuery{
			Sort:      "created_at",
			InTeam:    strPtr("T1"),
			InChannel: strPtr("C1"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel scope")
	})
}
