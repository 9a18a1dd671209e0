package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"request-board/internal/entities"
	"request-board/pkg/utils"
)

type stubLinks struct{}

func (stubLinks) DownloadURL(fileID entities.ID) string {
	return "/admin/download/" + fileID.String()
}

func TestBuildView_EscapesFreeTextAndBuildsControls(t *testing.T) {
	requests := []entities.Request{
		{
			ID:        "42",
			CreatedAt: "2024-05-01T10:00:00",
			Name:      `<b>Анна</b>`,
			Phone:     `+7 "900"`,
			Message:   `Tom & Jerry's <script>`,
			Status:    "inwork",
			UserID:    "7",
			Documents: []entities.Document{
				{FileID: "f1", FileName: "иск<1>.pdf"},
				{FileID: "f2", FileName: "договор.docx"},
			},
		},
	}

	got := BuildView(requests, stubLinks{}, utils.EscapeHTML)

	want := BoardView{
		Rows: []RowView{{
			ID:        "42",
			CreatedAt: "2024-05-01T10:00:00",
			Name:      "&lt;b&gt;Анна&lt;/b&gt;",
			Phone:     "+7 &quot;900&quot;",
			Message:   "Tom &amp; Jerry&#39;s &lt;script&gt;",
			Status:    "inwork",
			StatusOptions: []StatusOption{
				{Value: "new"},
				{Value: "inwork", Selected: true},
				{Value: "done"},
			},
			Documents: []DocumentLink{
				{Href: "/admin/download/f1", Label: "иск&lt;1&gt;.pdf"},
				{Href: "/admin/download/f2", Label: "договор.docx"},
			},
			ReplyUserID: "7",
		}},
		Counts: Counts{InWork: 1, Total: 1},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildView() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildView_EmptyCollection(t *testing.T) {
	got := BuildView([]entities.Request{}, stubLinks{}, utils.EscapeHTML)
	assert.Len(t, got.Rows, 0)
	assert.Equal(t, Counts{}, got.Counts)

	got = BuildView(nil, stubLinks{}, utils.EscapeHTML)
	assert.NotNil(t, got.Rows)
	assert.Len(t, got.Rows, 0)
}

func TestBuildView_KeepsServerOrderAndNoDocuments(t *testing.T) {
	requests := []entities.Request{
		{ID: "3", Status: "done"},
		{ID: "1", Status: "new"},
		{ID: "2", Status: "new"},
	}
	got := BuildView(requests, stubLinks{}, utils.EscapeHTML)

	ids := make([]entities.ID, 0, len(got.Rows))
	for _, r := range got.Rows {
		ids = append(ids, r.ID)
		assert.NotNil(t, r.Documents)
		assert.Empty(t, r.Documents)
	}
	assert.Equal(t, []entities.ID{"3", "1", "2"}, ids)
}

func TestCountStatuses(t *testing.T) {
	requests := []entities.Request{
		{Status: "new"}, {Status: "new"},
		{Status: "inwork"},
		{Status: "done"}, {Status: "done"}, {Status: "done"},
	}
	c := CountStatuses(requests)
	assert.Equal(t, Counts{New: 2, InWork: 1, Done: 3, Unknown: 0, Total: 6}, c)
	assert.Equal(t, c.Total, c.New+c.InWork+c.Done+c.Unknown)

	c = CountStatuses([]entities.Request{{Status: "archived"}, {Status: ""}, {Status: "new"}})
	assert.Equal(t, Counts{New: 1, Unknown: 2, Total: 3}, c)
}

func TestBuildView_UnknownStatusSelectsNothing(t *testing.T) {
	got := BuildView([]entities.Request{{ID: "5", Status: "archived"}}, stubLinks{}, utils.EscapeHTML)
	for _, opt := range got.Rows[0].StatusOptions {
		assert.False(t, opt.Selected)
	}
}
