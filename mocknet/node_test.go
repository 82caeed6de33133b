// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/esetonyehi/evolution-of-exchange/clarity"
	"github.com/esetonyehi/evolution-of-exchange/database/memdb"
	"github.com/esetonyehi/evolution-of-exchange/exchange"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

const recipient = "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG"

func newTestNode(t *testing.T) *Node {
	t.Helper()

	node, err := New(
		logging.NoLog{},
		prometheus.NewRegistry(),
		memdb.New(),
		DefaultConfig(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, node.Close())
	})
	return node
}

func readOnly(functionName string, args ...clarity.Arg) *ReadOnlyCallOptions {
	return &ReadOnlyCallOptions{
		ContractAddress: DefaultContractAddress,
		ContractName:    ContractName,
		FunctionName:    functionName,
		FunctionArgs:    args,
		Network:         Mocknet,
		SenderAddress:   DefaultContractAddress,
	}
}

func performExchange(era, amount uint64) *Transaction {
	return NewTransaction(
		PerformExchange,
		clarity.UintArg(era),
		clarity.UintArg(amount),
		clarity.PrincipalArg(DefaultContractAddress),
		clarity.PrincipalArg(recipient),
	)
}

func TestInitializeContract(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	result, err := node.CallReadOnlyFunction(context.Background(), readOnly(EvolutionOfExchange))
	require.NoError(err)
	require.True(result.Success)
	require.Contains(result.Result, "Evolution of Exchange initialized")
	require.Equal(DefaultTxID, result.TxID)
}

func TestInitializeExchangeHistory(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	result, err := node.BroadcastTransaction(context.Background(), NewTransaction(InitializeExchangeHistory))
	require.NoError(err)
	require.True(result.Success)
	require.Contains(result.Result, "(ok true)")
}

func TestGetExchangeInfo(t *testing.T) {
	tests := []struct {
		name             string
		era              uint64
		expectedContains []string
	}{
		{
			name: "barter",
			era:  exchange.BarterEra,
			expectedContains: []string{
				"(some ",
				`"method":"Barter"`,
				`"year-introduced":9000`,
				`"is-current":false`,
			},
		},
		{
			name: "cryptocurrency",
			era:  exchange.CryptocurrencyEra,
			expectedContains: []string{
				`"method":"Cryptocurrency"`,
				`"year-introduced":2009`,
				`"is-current":true`,
			},
		},
		{
			name: "unknown era falls back to barter",
			era:  99,
			expectedContains: []string{
				`"era":1`,
				`"method":"Barter"`,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			node := newTestNode(t)
			result, err := node.CallReadOnlyFunction(
				context.Background(),
				readOnly(GetExchangeInfo, clarity.UintArg(test.era)),
			)
			require.NoError(err)
			require.True(result.Success)
			for _, expected := range test.expectedContains {
				require.Contains(result.Result, expected)
			}
		})
	}
}

func TestGetExchangeInfoFallbackMetric(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	ctx := context.Background()

	_, err := node.CallReadOnlyFunction(ctx, readOnly(GetExchangeInfo, clarity.UintArg(exchange.CryptocurrencyEra)))
	require.NoError(err)
	require.Zero(testutil.ToFloat64(node.metrics.fallbacks))

	_, err = node.CallReadOnlyFunction(ctx, readOnly(GetExchangeInfo, clarity.UintArg(7)))
	require.NoError(err)
	require.Equal(1.0, testutil.ToFloat64(node.metrics.fallbacks))
	require.Equal(2.0, testutil.ToFloat64(node.metrics.calls.WithLabelValues(readOnlyKind, GetExchangeInfo)))
}

func TestIsExchangeMethodCurrent(t *testing.T) {
	tests := []struct {
		name     string
		era      uint64
		expected string
	}{
		{name: "barter", era: exchange.BarterEra, expected: "false"},
		{name: "paper money", era: exchange.PaperMoneyEra, expected: "false"},
		{name: "digital money", era: exchange.DigitalMoneyEra, expected: "true"},
		{name: "cryptocurrency", era: exchange.CryptocurrencyEra, expected: "true"},
		{name: "future era", era: 1_000, expected: "true"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			node := newTestNode(t)
			result, err := node.CallReadOnlyFunction(
				context.Background(),
				readOnly(IsExchangeMethodCurrent, clarity.UintArg(test.era)),
			)
			require.NoError(err)
			require.True(result.Success)
			require.Equal(test.expected, result.Result)
		})
	}
}

func TestUnmodelledReadOnlyFunction(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	result, err := node.CallReadOnlyFunction(context.Background(), readOnly("get-era-count"))
	require.NoError(err)
	require.True(result.Success)
	require.Equal("(ok true)", result.Result)
}

func TestPerformExchange(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	result, err := node.BroadcastTransaction(context.Background(), performExchange(exchange.DigitalMoneyEra, 100))
	require.NoError(err)
	require.True(result.Success)
	require.Contains(result.Result, "(ok true)")
}

func TestPlayEraTheme(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	tx := NewTransaction(PlayEraTheme, clarity.UintArg(exchange.MetallicMoneyEra))
	result, err := node.BroadcastTransaction(context.Background(), tx)
	require.NoError(err)
	require.True(result.Success)
	require.Contains(result.Result, "(ok true)")
}

func TestPerformExchangeHistoricalMethod(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	ctx := context.Background()

	require.NoError(node.SetSuccess(PerformExchange, clarity.Ok(clarity.Bool(false))))

	result, err := node.BroadcastTransaction(ctx, performExchange(exchange.BarterEra, 5))
	require.NoError(err)
	require.True(result.Success)
	require.Contains(result.Result, "(ok false)")

	// Only the overridden function is affected.
	result, err = node.BroadcastTransaction(ctx, NewTransaction(PlayEraTheme, clarity.UintArg(exchange.BarterEra)))
	require.NoError(err)
	require.Equal("(ok true)", result.Result)

	require.Equal(1.0, testutil.ToFloat64(node.metrics.overrides.WithLabelValues(PerformExchange)))
}

func TestSetResultAlwaysSucceeds(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	require.NoError(node.SetResult(PerformExchange, &CallResult{
		Result: clarity.Ok(clarity.Bool(false)),
	}))

	result, err := node.BroadcastTransaction(context.Background(), performExchange(exchange.BarterEra, 5))
	require.NoError(err)
	require.Equal(&CallResult{
		Result:  "(ok false)",
		TxID:    DefaultTxID,
		Success: true,
	}, result)
}

func TestFunctionLabelsAreBounded(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	ctx := context.Background()

	for _, functionName := range []string{"get-era-count", "play-era-theme-v2", "anything-else"} {
		_, err := node.CallReadOnlyFunction(ctx, readOnly(functionName))
		require.NoError(err)
		_, err = node.BroadcastTransaction(ctx, NewTransaction(functionName))
		require.NoError(err)
		require.NoError(node.SetSuccess(functionName, clarity.Err("u1")))
	}
	_, err := node.BroadcastTransaction(ctx, NewTransaction(PlayEraTheme))
	require.NoError(err)

	require.Equal(3.0, testutil.ToFloat64(node.metrics.calls.WithLabelValues(readOnlyKind, otherFunction)))
	require.Equal(3.0, testutil.ToFloat64(node.metrics.calls.WithLabelValues(broadcastKind, otherFunction)))
	require.Equal(1.0, testutil.ToFloat64(node.metrics.calls.WithLabelValues(broadcastKind, PlayEraTheme)))
	require.Equal(3.0, testutil.ToFloat64(node.metrics.overrides.WithLabelValues(otherFunction)))
	require.Equal(3, testutil.CollectAndCount(node.metrics.calls))
	require.Equal(1, testutil.CollectAndCount(node.metrics.overrides))
}

func TestResetResults(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	ctx := context.Background()

	require.NoError(node.SetSuccess(PerformExchange, clarity.Ok(clarity.Bool(false))))
	require.NoError(node.SetSuccess("play-era-theme-v2", clarity.Err("u1")))
	require.NoError(node.ResetResults())

	result, err := node.BroadcastTransaction(ctx, performExchange(exchange.CryptocurrencyEra, 42))
	require.NoError(err)
	require.Equal("(ok true)", result.Result)

	result, err = node.BroadcastTransaction(ctx, NewTransaction("play-era-theme-v2"))
	require.NoError(err)
	require.Equal("(ok true)", result.Result)

	result, err = node.CallReadOnlyFunction(ctx, readOnly(EvolutionOfExchange))
	require.NoError(err)
	require.Equal(`(ok "Evolution of Exchange initialized")`, result.Result)
}

func TestIntegrationSequence(t *testing.T) {
	require := require.New(t)

	node := newTestNode(t)
	ctx := context.Background()

	initResult, err := node.BroadcastTransaction(ctx, NewTransaction(InitializeExchangeHistory))
	require.NoError(err)
	require.True(initResult.Success)

	currentResult, err := node.CallReadOnlyFunction(ctx, readOnly(IsExchangeMethodCurrent, clarity.UintArg(exchange.CryptocurrencyEra)))
	require.NoError(err)
	require.True(currentResult.Success)
	require.Contains(currentResult.Result, "true")

	exchangeResult, err := node.BroadcastTransaction(ctx, performExchange(exchange.CryptocurrencyEra, 42))
	require.NoError(err)
	require.True(exchangeResult.Success)

	require.Equal(1.0, testutil.ToFloat64(node.metrics.calls.WithLabelValues(broadcastKind, InitializeExchangeHistory)))
	require.Equal(1.0, testutil.ToFloat64(node.metrics.calls.WithLabelValues(readOnlyKind, IsExchangeMethodCurrent)))
	require.Equal(1.0, testutil.ToFloat64(node.metrics.calls.WithLabelValues(broadcastKind, PerformExchange)))
}

func TestInvalidCalls(t *testing.T) {
	tests := []struct {
		name        string
		call        func(context.Context, *Node) error
		expectedErr error
	}{
		{
			name: "nil options",
			call: func(ctx context.Context, n *Node) error {
				_, err := n.CallReadOnlyFunction(ctx, nil)
				return err
			},
			expectedErr: errMissingOptions,
		},
		{
			name: "missing function name",
			call: func(ctx context.Context, n *Node) error {
				_, err := n.CallReadOnlyFunction(ctx, readOnly(""))
				return err
			},
			expectedErr: errMissingFunctionName,
		},
		{
			name: "unknown contract",
			call: func(ctx context.Context, n *Node) error {
				options := readOnly(EvolutionOfExchange)
				options.ContractName = "hello-world"
				_, err := n.CallReadOnlyFunction(ctx, options)
				return err
			},
			expectedErr: errUnknownContract,
		},
		{
			name: "unknown network",
			call: func(ctx context.Context, n *Node) error {
				options := readOnly(EvolutionOfExchange)
				options.Network = "devnet"
				_, err := n.CallReadOnlyFunction(ctx, options)
				return err
			},
			expectedErr: ErrUnknownNetwork,
		},
		{
			name: "other contract address",
			call: func(ctx context.Context, n *Node) error {
				options := readOnly(EvolutionOfExchange)
				options.ContractAddress = recipient
				_, err := n.CallReadOnlyFunction(ctx, options)
				return err
			},
			expectedErr: errUnknownContract,
		},
		{
			name: "uint without a value",
			call: func(ctx context.Context, n *Node) error {
				_, err := n.CallReadOnlyFunction(ctx, readOnly(GetExchangeInfo, clarity.Arg{
					Type:  clarity.UintType,
					Value: []byte("null"),
				}))
				return err
			},
			expectedErr: clarity.ErrMissingValue,
		},
		{
			name: "malformed sender",
			call: func(ctx context.Context, n *Node) error {
				options := readOnly(EvolutionOfExchange)
				options.SenderAddress = "alice"
				_, err := n.CallReadOnlyFunction(ctx, options)
				return err
			},
			expectedErr: clarity.ErrInvalidPrincipal,
		},
		{
			name: "era missing",
			call: func(ctx context.Context, n *Node) error {
				_, err := n.CallReadOnlyFunction(ctx, readOnly(GetExchangeInfo))
				return err
			},
			expectedErr: errWrongArgCount,
		},
		{
			name: "era is a principal",
			call: func(ctx context.Context, n *Node) error {
				_, err := n.CallReadOnlyFunction(ctx, readOnly(IsExchangeMethodCurrent, clarity.PrincipalArg(recipient)))
				return err
			},
			expectedErr: clarity.ErrWrongType,
		},
		{
			name: "nil transaction",
			call: func(ctx context.Context, n *Node) error {
				_, err := n.BroadcastTransaction(ctx, nil)
				return err
			},
			expectedErr: errMissingPayload,
		},
		{
			name: "transaction without function",
			call: func(ctx context.Context, n *Node) error {
				_, err := n.BroadcastTransaction(ctx, NewTransaction(""))
				return err
			},
			expectedErr: errMissingFunctionName,
		},
		{
			name: "cancelled context",
			call: func(_ context.Context, n *Node) error {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				_, err := n.BroadcastTransaction(ctx, NewTransaction(InitializeExchangeHistory))
				return err
			},
			expectedErr: context.Canceled,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			node := newTestNode(t)
			err := test.call(context.Background(), node)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestDuplicateMetricsRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	node, err := New(logging.NoLog{}, registry, memdb.New(), DefaultConfig())
	require.NoError(err)
	defer func() {
		require.NoError(node.Close())
	}()

	_, err = New(logging.NoLog{}, registry, memdb.New(), DefaultConfig())
	require.Error(err)
}
