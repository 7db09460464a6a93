package roster_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teampair/preference"
	"github.com/katalvlaran/teampair/roster"
)

func TestLoadFile_Hackathon(t *testing.T) {
	r, err := roster.LoadFile("testdata/hackathon.yaml")
	require.NoError(t, err)

	require.Equal(t, []preference.EmployeeID{1, 2, 3}, r.LeaderIDs())
	require.Equal(t, []preference.EmployeeID{11, 12, 13}, r.JuniorIDs())
	require.Equal(t, "Dmitry", r.LeaderName(2))
	require.Equal(t, "Fatima", r.JuniorName(13))
	require.Empty(t, r.LeaderName(13))

	lb := r.LeaderBook()
	require.Equal(t, preference.List{12, 13, 11}, lb[2])
	require.Equal(t, 3, lb.Score(2, 12))

	jb := r.JuniorBook()
	require.Equal(t, preference.List{1}, jb[11])

	want := []roster.Warning{{Role: "junior", Owner: 13, Unknown: []preference.EmployeeID{99}}}
	if diff := cmp.Diff(want, r.Warnings()); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyRoster(t *testing.T) {
	r, err := roster.Load(strings.NewReader("leaders: []\njuniors: []\n"))
	require.NoError(t, err)
	require.Empty(t, r.LeaderIDs())
	require.Empty(t, r.LeaderBook())
	require.Empty(t, r.Warnings())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "empty document",
			doc:  "",
			want: roster.ErrInvalidRoster,
		},
		{
			name: "not yaml",
			doc:  "leaders: [",
			want: roster.ErrInvalidRoster,
		},
		{
			name: "unknown field",
			doc:  "leaders: []\njuniors: []\nmentors: []\n",
			want: roster.ErrInvalidRoster,
		},
		{
			name: "zero id",
			doc:  "leaders: [{id: 0}]\njuniors: [{id: 5}]\n",
			want: roster.ErrInvalidRoster,
		},
		{
			name: "duplicate leader",
			doc:  "leaders: [{id: 1}, {id: 1}]\njuniors: [{id: 5}, {id: 6}]\n",
			want: roster.ErrInvalidRoster,
		},
		{
			name: "negative wishlist entry",
			doc:  "leaders: [{id: 1}]\njuniors: [{id: 5}]\nwishlists: {leaders: {1: [-5]}}\n",
			want: roster.ErrInvalidRoster,
		},
		{
			name: "unknown owner",
			doc:  "leaders: [{id: 1}]\njuniors: [{id: 5}]\nwishlists: {juniors: {6: [1]}}\n",
			want: roster.ErrInvalidRoster,
		},
		{
			name: "unequal counts",
			doc:  "leaders: [{id: 1}, {id: 2}]\njuniors: [{id: 5}]\n",
			want: preference.ErrUnequalRoster,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := roster.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_ValidationErrorsReachable(t *testing.T) {
	_, err := roster.Load(strings.NewReader("leaders: [{id: 0}]\njuniors: [{id: 5}]\n"))
	require.ErrorIs(t, err, roster.ErrInvalidRoster)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.NotEmpty(t, verrs)
	require.Equal(t, "gt", verrs[0].Tag())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := roster.LoadFile("testdata/does-not-exist.yaml")
	require.ErrorIs(t, err, os.ErrNotExist)
}
