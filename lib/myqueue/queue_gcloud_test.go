package myqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeNames(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "myproject")
	t.Setenv("LOCATION_ID", "europe-west3")

	t.Run("Default queue", func(t *testing.T) {
		t.Setenv("QUEUE_NAME", "")
		assert.Equal(t, "projects/myproject/locations/europe-west3/queues/default", composeQueueName())
	})

	t.Run("Named queue", func(t *testing.T) {
		t.Setenv("QUEUE_NAME", "cart")
		assert.Equal(t, "projects/myproject/locations/europe-west3/queues/cart/tasks/abc", composeTaskName("abc"))
	})
}
