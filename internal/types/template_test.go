package types

import (
	"testing"

	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestTemplateVariantValidate(t *testing.T) {
	for _, v := range TemplateVariants {
		assert.NoError(t, v.Validate(), v.String())
	}

	err := TemplateVariant("landscape").Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	assert.True(t, ierr.IsValidation(TemplateVariant("").Validate()))
}

func TestGenerateShortIDWithPrefix(t *testing.T) {
	id := GenerateShortIDWithPrefix(SHORT_ID_PREFIX_SUBMISSION)
	assert.LessOrEqual(t, len(id), 12)
	assert.Contains(t, id, SHORT_ID_PREFIX_SUBMISSION)

	docID := GenerateUUIDWithPrefix(UUID_PREFIX_DOCUMENT)
	assert.Contains(t, docID, "doc_")
}
