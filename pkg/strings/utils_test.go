package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usergraph/social-service/pkg/strings"
)

func TestParseTypedValue(t *testing.T) {
	boolValue, err := strings.ParseTypedValue[bool]("true")
	require.NoError(t, err)
	assert.True(t, boolValue)

	intValue, err := strings.ParseTypedValue[int]("42")
	require.NoError(t, err)
	assert.Equal(t, 42, intValue)

	durationValue, err := strings.ParseTypedValue[time.Duration]("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, durationValue)

	id := uuid.New()
	uuidValue, err := strings.ParseTypedValue[uuid.UUID](id.String())
	require.NoError(t, err)
	assert.Equal(t, id, uuidValue)

	_, err = strings.ParseTypedValue[int]("not-a-number")
	assert.Error(t, err)

	_, err = strings.ParseTypedValue[uuid.UUID]("not-a-uuid")
	assert.Error(t, err)
}

func TestCaseConversions(t *testing.T) {
	assert.Equal(t, "member-type", strings.ToKebabCase("MemberType"))
	assert.Equal(t, "member_type", strings.ToSnakeCase("MemberType"))
	assert.Equal(t, "MemberType", strings.ToCamelCase("member_type"))
	assert.Equal(t, "memberType", strings.ToLowerCamelCase("member_type"))
}
