package dataset

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside.dev/backend/internal/constant"
)

const testHeader = "firstName,lastName,gameDate,gameType,points,win,plusMinusPoints\n"

func TestSeasonOf(t *testing.T) {
	cases := map[string]int{
		"2022-10-01": 2022,
		"2022-12-31": 2022,
		"2023-01-01": 2022,
		"2023-09-30": 2022,
		"2023-10-18": 2023,
	}
	for date, expected := range cases {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		assert.Equal(t, expected, SeasonOf(d), date)
	}
}

func TestReadFixture(t *testing.T) {
	records, err := Load(context.Background(), "testdata/players.csv", nil)
	require.NoError(t, err)
	require.Len(t, records, 38)

	first := records[0]
	assert.Equal(t, "Avery Cole", first.Player)
	assert.Equal(t, "100", first.PersonID)
	assert.Equal(t, "Harbor Hawks", first.Team)
	assert.Equal(t, "Summit Bears", first.Opponent)
	assert.True(t, first.Home.Valid)
	assert.True(t, first.Home.Bool)
	assert.Equal(t, time.Date(2022, time.November, 4, 19, 30, 0, 0, time.UTC), first.GameDate)
	assert.Equal(t, 2022, first.Season)
	assert.Equal(t, constant.GameTypeRegularSeason, first.GameType)
	assert.InDelta(t, 29, first.Points.Float64, 1e-9)
	assert.InDelta(t, 0, first.Win.Float64, 1e-9)
	assert.InDelta(t, -3, first.PlusMinus.Float64, 1e-9)

	// a March game still belongs to the season that started the previous October
	assert.Equal(t, 2022, records[2].Season)

	var missingWin, missingPlusMinus int
	for _, r := range records {
		if !r.Win.Valid {
			missingWin++
		}
		if !r.PlusMinus.Valid {
			missingPlusMinus++
		}
	}
	assert.Equal(t, 1, missingWin)
	assert.Equal(t, 1, missingPlusMinus)
}

func TestReadAcceptsColumnOrderAndLayouts(t *testing.T) {
	csv := "win,plusMinusPoints,points,gameType,gameDate,lastName,firstName\n" +
		"true,3,12,Regular Season,2020-12-25T12:00:00Z,Doe,Jane\n" +
		"1.0,NA,,Regular Season,2021-02-01,Doe,Jane\n"

	records, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Jane Doe", records[0].Player)
	assert.Equal(t, 2020, records[0].Season)
	assert.InDelta(t, 1, records[0].Win.Float64, 1e-9)
	assert.False(t, records[0].Home.Valid)

	assert.Equal(t, 2020, records[1].Season)
	assert.False(t, records[1].Points.Valid)
	assert.False(t, records[1].PlusMinus.Valid)
	assert.InDelta(t, 1, records[1].Win.Float64, 1e-9)
}

func TestReadRejectsMalformedTimestamp(t *testing.T) {
	csv := testHeader +
		"Jane,Doe,2021-02-01 10:00:00,Regular Season,10,1,2\n" +
		"John,Doe,yesterday,Regular Season,10,1,2\n"

	records, err := Read(strings.NewReader(csv))
	assert.Nil(t, records)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, ColumnGameDate, parseErr.Column)
	assert.Equal(t, "yesterday", parseErr.Value)
	assert.ErrorIs(t, err, ErrUnknownTimeLayout)
}

func TestReadRejectsMalformedNumbers(t *testing.T) {
	cases := map[string]string{
		ColumnPoints:    "Jane,Doe,2021-02-01,Regular Season,ten,1,2\n",
		ColumnWin:       "Jane,Doe,2021-02-01,Regular Season,10,2,2\n",
		ColumnPlusMinus: "Jane,Doe,2021-02-01,Regular Season,10,1,+/-\n",
	}
	for column, row := range cases {
		_, err := Read(strings.NewReader(testHeader + row))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, column)
		assert.Equal(t, column, parseErr.Column)
		assert.Equal(t, 2, parseErr.Line)
	}
}

func TestReadRejectsInfiniteNumbers(t *testing.T) {
	for _, v := range []string{"Inf", "+Inf", "-inf", "Infinity"} {
		_, err := Read(strings.NewReader(testHeader + "Jane,Doe,2021-02-01,Regular Season," + v + ",1,2\n"))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, v)
		assert.Equal(t, ColumnPoints, parseErr.Column, v)
		assert.ErrorIs(t, err, ErrNotFinite, v)
	}

	_, err := Read(strings.NewReader(testHeader + "Jane,Doe,2021-02-01,Regular Season,10,1,-Inf\n"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ColumnPlusMinus, parseErr.Column)
}

func TestReadStoresUTCAndLocalSeason(t *testing.T) {
	records, err := Read(strings.NewReader(testHeader +
		"Jane,Doe,2022-09-30T23:30:00-05:00,Regular Season,10,1,2\n" +
		"Jane,Doe,2021-02-01T10:00:00-05:00,Regular Season,12,0,-1\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.UTC, records[0].GameDate.Location())
	assert.Equal(t, time.Date(2022, time.October, 1, 4, 30, 0, 0, time.UTC), records[0].GameDate)
	// still September on the local calendar
	assert.Equal(t, 2021, records[0].Season)

	assert.Equal(t, time.Date(2021, time.February, 1, 15, 0, 0, 0, time.UTC), records[1].GameDate)
	assert.Equal(t, 2020, records[1].Season)
}

func TestReadRejectsMissingColumns(t *testing.T) {
	_, err := Read(strings.NewReader("firstName,lastName,gameDate,points\nJane,Doe,2021-02-01,10\n"))

	var missingErr *MissingColumnError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{ColumnGameType, ColumnWin, ColumnPlusMinus}, missingErr.Columns)

	_, err = Read(strings.NewReader(""))
	require.ErrorAs(t, err, &missingErr)
}

func TestReadStripsByteOrderMark(t *testing.T) {
	records, err := Read(strings.NewReader("\ufeff" + testHeader + "Jane,Doe,2021-02-01,Regular Season,10,1,2\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jane Doe", records[0].Player)
}

type fakeObjects struct {
	bucket, key string
	body        string
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket, f.key = *in.Bucket, *in.Key
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewBufferString(f.body))}, nil
}

func TestLoadFromObjectStorage(t *testing.T) {
	objects := &fakeObjects{body: testHeader + "Jane,Doe,2021-02-01,Regular Season,10,1,2\n"}

	records, err := Load(context.Background(), "s3://nba-stats/exports/players.csv", objects)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "nba-stats", objects.bucket)
	assert.Equal(t, "exports/players.csv", objects.key)

	_, err = Load(context.Background(), "s3://nba-stats/players.csv", nil)
	assert.ErrorIs(t, err, ErrObjectStorageUnavailable)

	_, err = Load(context.Background(), "s3://nba-stats", objects)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), "testdata/does-not-exist.csv", nil)
	assert.Error(t, err)
}
