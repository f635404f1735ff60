package batch

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/validator"
)

var inputs = []string{
	"FqLDjQPjguc5SHwM2RxMbX24fsc8WmQoBA",
	"muCVFTRDC6JVHuYx3qupeQ6hraoM8ENGUy",
	"FqLDjQPjguc5SHwMMRxMbX24fsc8WmQoBA",
	"grs1q509twc95s820qrufx2wm8gyqfgjreasdu354gf",
	"tgrs1q3uzttcfwdj6g0hx84m3lmxl6xlypxw44mgqtxw",
	"x",
	"grsrt1qmdqzzny25ujs7cdau9kr6et9u8s8wd00jd3qsl6zkhtumtzj845sx8q4m2",
}

func TestCheckAllOrdered(t *testing.T) {
	c := NewChecker(WithWorkers(3))
	require.Equal(t, 3, c.Workers())

	results, err := c.CheckAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	wantValid := []bool{true, true, false, true, true, false, true}
	for i, res := range results {
		require.Equal(t, i, res.Index)
		require.Equal(t, inputs[i], res.Address)
		require.Equal(t, wantValid[i], res.Valid, res.Address)
		if res.Valid {
			require.NotNil(t, res.Classification)
			require.Empty(t, res.Error)
		} else {
			require.Nil(t, res.Classification)
			require.NotEmpty(t, res.Error)
		}
	}
	require.Equal(t, validator.P2WSH, results[6].Classification.Type)

	stats := c.Stats()
	require.Equal(t, uint64(7), stats.Checked)
	require.Equal(t, uint64(5), stats.Valid)
	require.Equal(t, uint64(2), stats.Invalid)
	require.Greater(t, stats.ElapsedSecs, 0.0)
}

func TestCheckAllStrict(t *testing.T) {
	c := NewChecker(WithNetwork(chaincfg.Testnet))
	results, err := c.CheckAll(context.Background(), inputs)
	require.NoError(t, err)

	var valid []string
	for _, res := range results {
		if res.Valid {
			valid = append(valid, res.Address)
		}
	}
	require.Equal(t, []string{inputs[1], inputs[4]}, valid)

	// wrong network still reports what the address is
	require.NotNil(t, results[0].Classification)
	require.Equal(t, chaincfg.Mainnet, results[0].Classification.Network)
	require.Contains(t, results[0].Error, "want testnet")
}

func TestCheckValuesUntyped(t *testing.T) {
	addr := inputs[0]
	c := NewChecker(WithWorkers(2))
	results, err := c.CheckValues(context.Background(), []any{addr, &addr, nil, 7.0})
	require.NoError(t, err)

	require.True(t, results[0].Valid)
	require.True(t, results[1].Valid)
	require.False(t, results[2].Valid)
	require.Contains(t, results[2].Error, "not a string")
	require.False(t, results[3].Valid)
	require.Contains(t, results[3].Error, "float64")
}

func TestCheckValuesMatchesValidateValue(t *testing.T) {
	addr := inputs[0]
	var nilString *string
	values := []any{addr, &addr, nilString, nil, 1, []byte(addr), inputs[3], "x"}

	c := NewChecker(WithWorkers(3))
	results, err := c.CheckValues(context.Background(), values)
	require.NoError(t, err)

	for i, v := range values {
		cls, ok := validator.ValidateValue(v)
		require.Equal(t, ok, results[i].Valid, "value %d", i)
		if ok {
			require.Equal(t, cls, *results[i].Classification)
		}
	}
}

func TestCheckAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewChecker(WithWorkers(1))
	results, err := c.CheckAll(ctx, inputs)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, len(inputs))
	require.Less(t, c.Stats().Checked, uint64(len(inputs)))
}

func TestObserver(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}
	c := NewChecker(WithObserver(func(r Result) {
		mu.Lock()
		seen[r.Index] = r.Valid
		mu.Unlock()
	}))

	_, err := c.CheckAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, seen, len(inputs))
	require.False(t, seen[5])
}

func TestStart(t *testing.T) {
	in := make(chan string)
	c := NewChecker(WithWorkers(4))
	out := c.Start(context.Background(), in)

	go func() {
		for _, a := range inputs {
			in <- a
		}
		close(in)
	}()

	var results []Result
	for r := range out {
		results = append(results, r)
	}
	require.Len(t, results, len(inputs))

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	for i, r := range results {
		require.Equal(t, inputs[i], r.Address)
	}
	require.Equal(t, uint64(5), c.Stats().Valid)
}

func TestStartCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan string)
	out := NewChecker().Start(ctx, in)
	cancel()

	// out closes without in ever being closed
	for range out {
	}
}

func TestSummaryLogged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c := NewChecker(WithLogger(logrus.NewEntry(logger)))
	_, err := c.CheckAll(context.Background(), inputs[:2])
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "batch finished", entry.Message)
	require.Equal(t, uint64(2), entry.Data["checked"])
}
