package converter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStrToUUID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, StrToUUID(id.String()))

	// malformed claims degrade to the nil actor
	assert.Equal(t, uuid.Nil, StrToUUID("not-a-uuid"))
	assert.Equal(t, uuid.Nil, StrToUUID(""))
}
