// Package cache implementa la caché del dashboard sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/pkg/config"
	"github.com/jhoicas/Trunks-api/pkg/logger"
)

// DefaultTTL vigencia de una entrada; acota el daño si un INCR se pierde.
const DefaultTTL = 5 * time.Minute

// kv subconjunto de comandos de Redis que usa la caché. *redis.Client lo cumple.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// NewClient conecta con Redis y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// StatsCache guarda el DashboardStatsDTO por versión de inventario.
// La versión es un contador que se incrementa tras cada escritura confirmada.
type StatsCache struct {
	client kv
	prefix string
	ttl    time.Duration
	log    *logger.Logger
}

// NewStatsCache construye la caché. prefix separa instancias que comparten Redis.
func NewStatsCache(client kv, prefix string, ttl time.Duration, log *logger.Logger) *StatsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StatsCache{client: client, prefix: prefix, ttl: ttl, log: log.Component("stats_cache")}
}

func (c *StatsCache) versionKey() string {
	return c.prefix + ":inventory:version"
}

func (c *StatsCache) statsKey(version int64) string {
	return c.prefix + ":dashboard:stats:" + strconv.FormatInt(version, 10)
}

// Version devuelve la versión actual del inventario; 0 si todavía no hubo escrituras.
func (c *StatsCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, c.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("leer versión de inventario")
		return 0, err
	}
	return v, nil
}

// Get devuelve las estadísticas guardadas para version, o nil si no hay entrada.
func (c *StatsCache) Get(ctx context.Context, version int64) (*dto.DashboardStatsDTO, error) {
	raw, err := c.client.Get(ctx, c.statsKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		c.log.Warn().Err(err).Int64("version", version).Msg("leer estadísticas")
		return nil, err
	}
	var stats dto.DashboardStatsDTO
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decodificar estadísticas: %w", err)
	}
	return &stats, nil
}

// Set guarda stats bajo version con la TTL configurada.
func (c *StatsCache) Set(ctx context.Context, version int64, stats *dto.DashboardStatsDTO) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.statsKey(version), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Int64("version", version).Msg("guardar estadísticas")
		return err
	}
	return nil
}

// InventoryChanged invalida las entradas anteriores avanzando la versión.
func (c *StatsCache) InventoryChanged(ctx context.Context) {
	v, err := c.client.Incr(ctx, c.versionKey()).Result()
	if err != nil {
		c.log.Error().Err(err).Msg("incrementar versión de inventario")
		return
	}
	c.log.Debug().Int64("version", v).Msg("inventario modificado")
}
