package http_test

import (
	"testing"

	httpin "ordertracker/internal/adapters/in/http"
	"ordertracker/internal/core/application/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRenderer_Render(t *testing.T) {
	r, err := httpin.NewCardRenderer()
	require.NoError(t, err)

	t.Run("placeholder", func(t *testing.T) {
		html, err := r.Render(widget.ListView{Placeholder: widget.EmptyListText})

		require.NoError(t, err)
		assert.Equal(t, `<div class="order"><p>No matching orders.</p></div>`, html)
	})

	t.Run("card", func(t *testing.T) {
		html, err := r.Render(widget.ListView{Cards: []widget.CardView{{
			ID:       "id-1",
			Name:     "Order <#001>",
			Customer: "Mr. Wang",
			Status:   "Pending",
			Note:     "*call* first <script>alert(1)</script>",
			HasNote:  true,
			Location: "31.230, 121.474",
			Active:   true,
			Actions: []widget.ActionView{
				{Kind: widget.ActionSelect, Label: "Locate", OrderID: "id-1"},
				{Kind: widget.ActionDelete, Label: "Delete", OrderID: "id-1"},
			},
		}}})

		require.NoError(t, err)
		assert.Contains(t, html, `<div class="order active" data-id="id-1">`)
		assert.Contains(t, html, "<h3>Order &lt;#001&gt;</h3>")
		assert.Contains(t, html, "Customer: Mr. Wang")
		assert.Contains(t, html, "<em>call</em>")
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "Location: 31.230, 121.474")
		assert.Contains(t, html, `data-action="select" data-id="id-1">Locate</button>`)
		assert.Contains(t, html, `data-action="delete" data-id="id-1">Delete</button>`)
	})

	t.Run("empty note", func(t *testing.T) {
		html, err := r.Render(widget.ListView{Cards: []widget.CardView{{
			ID: "id-2", Name: "A", Customer: "B", Status: "Complete", Note: widget.EmptyNoteText, Location: widget.NoLocationText,
		}}})

		require.NoError(t, err)
		assert.Contains(t, html, "Note: -</div>")
		assert.Contains(t, html, "Location: not set")
		assert.Contains(t, html, `<div class="order" data-id="id-2">`)
	})
}
