// Package store реализует хранилище состояния посетителя на основе Redis.
// Для каждого посетителя хранятся три логические записи: снимок сессии,
// список позиций корзины и настройки. Записи сериализуются в JSON и
// перезаписываются целиком при каждом изменении.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dataiq/storefront/internal/config"
)

// Ключи логических записей состояния посетителя.
const (
	KeySession = "session"
	KeyCart    = "cart"
	KeyPrefs   = "prefs"
)

// Store обертка над клиентом Redis для работы с состоянием посетителя.
type Store struct {
	Db *redis.Client
}

// InitServer подключается к Redis по настройкам из конфига.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "store.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db}, nil
}

func stateKey(visitorUID, entry string) string {
	return fmt.Sprintf("storefront:%s:%s", entry, visitorUID)
}

// Get читает запись состояния посетителя и десериализует ее в result.
// Возвращает false без ошибки, если записи нет. Поврежденная запись
// приравнивается к отсутствующей: вызывающая сторона переинициализирует
// состояние значениями по умолчанию, ошибка разбора наружу не выходит.
func (s *Store) Get(ctx context.Context, visitorUID, entry string, result any) (bool, error) {
	const op = "store.Get"
	val, err := s.Db.Get(ctx, stateKey(visitorUID, entry)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, nil
	}
	return true, nil
}

// Set сериализует значение записи и сохраняет его без срока жизни:
// состояние посетителя живет до явного сброса.
func (s *Store) Set(ctx context.Context, visitorUID, entry string, value any) error {
	const op = "store.Set"
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return s.Db.Set(ctx, stateKey(visitorUID, entry), jsonData, 0).Err()
}

// Invalidate удаляет запись состояния посетителя.
func (s *Store) Invalidate(ctx context.Context, visitorUID, entry string) error {
	return s.Db.Del(ctx, stateKey(visitorUID, entry)).Err()
}

// Close закрывает соединение с Redis.
func (s *Store) Close() error {
	return s.Db.Close()
}
