package tvdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/tvdbgo/pkg/tvdb/mocks"
)

// The loader contract: exact URLs and the cache hint the client passes
// down for each façade call.

func TestSearchLoaderURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().
		Load(gomock.Any(), "http://mirror/api/GetSeries.php?seriesname=Dexter+Morgan&language=en", true).
		Return([]byte(searchDexterXML), nil)

	c, err := New(apiKey, WithBaseURL("http://mirror"), WithLoader(loader))
	require.NoError(t, err)

	result, err := c.Search(context.Background(), "Dexter Morgan", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Len())
}

func TestSearchSkipCachePassedToLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().
		Load(gomock.Any(), "http://mirror/api/GetSeries.php?seriesname=Dexter&language=en", false).
		Return([]byte(searchDexterXML), nil)

	c, err := New(apiKey, WithBaseURL("http://mirror"), WithLoader(loader))
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "Dexter", "en", SkipCache())
	require.NoError(t, err)
}

func TestGetSeriesLoaderURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	loader.EXPECT().
		Load(gomock.Any(), "http://base/api/"+apiKey+"/mirrors.xml", true).
		Return([]byte(mirrorsXML("http://mirror")), nil)
	loader.EXPECT().
		Load(gomock.Any(), "http://mirror/api/"+apiKey+"/series/79349/all/en.xml", true).
		Return([]byte(dexterSeriesXML()), nil)

	c, err := New(apiKey, WithBaseURL("http://base"), WithLoader(loader))
	require.NoError(t, err)

	show, err := c.GetSeries(context.Background(), 79349, "en")
	require.NoError(t, err)
	assert.Equal(t, "Dexter", show.SeriesName)
}

func TestLoaderErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	wantErr := &ConnectionError{URL: "http://mirror/api/GetSeries.php?seriesname=Dexter&language=en"}
	loader.EXPECT().
		Load(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, wantErr)

	c, err := New(apiKey, WithBaseURL("http://mirror"), WithLoader(loader))
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "Dexter", "en")
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Same(t, wantErr, connErr)
}
