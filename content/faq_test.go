package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleFAQ(t *testing.T) {
	t.Run("Opens Clicked Item", func(t *testing.T) {
		assert.Equal(t, 3, ToggleFAQ(FAQClosed, 3))
	})

	t.Run("Switches Between Items", func(t *testing.T) {
		assert.Equal(t, 5, ToggleFAQ(2, 5))
	})

	t.Run("Clicking Open Item Collapses It", func(t *testing.T) {
		assert.Equal(t, FAQClosed, ToggleFAQ(4, 4))
	})

	t.Run("Out Of Range Click Is Ignored", func(t *testing.T) {
		assert.Equal(t, 2, ToggleFAQ(2, -5))
		assert.Equal(t, 2, ToggleFAQ(2, len(FAQs)))
	})
}

func TestFAQs(t *testing.T) {
	assert.Len(t, FAQs, 10)
	for i, faq := range FAQs {
		assert.NotEmpty(t, faq.Question, "question %d", i)
		assert.NotEmpty(t, faq.Answer, "answer %d", i)
	}
}
