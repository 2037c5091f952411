package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyugame/letter-rush/internal/testutil"
)

func TestSpawnInterval_LinearRubberband(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	// Endpoints pinned by the rubberband definition
	assert.Equal(t, 500*time.Millisecond, spawnInterval(cfg, 0))
	assert.Equal(t, 10*time.Second, spawnInterval(cfg, PoolCap-1))

	// Strictly increasing over [0, 15]
	for f := 1; f < PoolCap; f++ {
		assert.Greater(t, spawnInterval(cfg, f), spawnInterval(cfg, f-1),
			"interval must grow with pool size (f=%d)", f)
	}

	// Linear: midpoint sits halfway between the endpoints (within
	// integer-division rounding)
	mid := spawnInterval(cfg, 0) + (spawnInterval(cfg, PoolCap-1)-spawnInterval(cfg, 0))/2
	assert.InDelta(t, float64(mid), float64(spawnInterval(cfg, (PoolCap-1)/2)),
		float64(spawnInterval(cfg, 1)-spawnInterval(cfg, 0)))

	// Out-of-range sizes clamp to the endpoints; a full pool polls at
	// the slowest cadence
	assert.Equal(t, spawnInterval(cfg, 0), spawnInterval(cfg, -3))
	assert.Equal(t, spawnInterval(cfg, PoolCap-1), spawnInterval(cfg, PoolCap))
	assert.Equal(t, spawnInterval(cfg, PoolCap-1), spawnInterval(cfg, 100))
}

func TestSpawn_RefillsAfterClaim(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RoundDuration = 5 * time.Second // keep the round alive for the whole test
	rm := newTestManager(cfg)

	c1 := testutil.NewSimpleClient("p1", "Alice")
	c2 := testutil.NewSimpleClient("p2", "Bob")
	require.NoError(t, rm.JoinRoom(c1, "R1", "Alice"))
	require.NoError(t, rm.JoinRoom(c2, "R1", "Bob"))

	room := rm.GetRoom("R1")
	require.NoError(t, room.Start("p1"))

	// Round starts with a full pool; the scheduler must not overfill it
	_, _, poolLen := room.snapshot()
	require.Equal(t, PoolCap, poolLen)

	time.Sleep(4 * cfg.SpawnIntervalFull)
	_, _, poolLen = room.snapshot()
	assert.Equal(t, PoolCap, poolLen, "full pool must never exceed its cap")

	// Claim one tile: the pool dips, then the spawner refills it
	// without any external nudge
	require.NoError(t, room.ClaimTile("p1", 0))
	_, _, poolLen = room.snapshot()
	require.Equal(t, PoolCap-1, poolLen)

	assert.Eventually(t, func() bool {
		_, _, n := room.snapshot()
		return n == PoolCap
	}, 2*time.Second, 5*time.Millisecond, "spawner should top the pool back up")
}

func TestSpawn_StopsOutsidePlaying(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Rounds = 1
	cfg.RoundDuration = 40 * time.Millisecond
	rm := newTestManager(cfg)

	c1 := testutil.NewSimpleClient("p1", "Alice")
	c2 := testutil.NewSimpleClient("p2", "Bob")
	require.NoError(t, rm.JoinRoom(c1, "R1", "Alice"))
	require.NoError(t, rm.JoinRoom(c2, "R1", "Bob"))

	room := rm.GetRoom("R1")
	require.NoError(t, room.Start("p1"))

	// Single round: the game ends at the round timer
	require.Eventually(t, func() bool {
		phase, _, _ := room.snapshot()
		return phase == PhaseFinal
	}, 2*time.Second, 5*time.Millisecond)

	// Drain a tile directly and verify nothing refills it
	room.mu.Lock()
	room.Pool = room.Pool[:PoolCap-1]
	room.mu.Unlock()

	time.Sleep(4 * cfg.SpawnIntervalFull)
	_, _, poolLen := room.snapshot()
	assert.Equal(t, PoolCap-1, poolLen, "spawn timer must be dead after the final round")
}
