// Package container shares constructed infrastructure across packages so the
// router modules can wire themselves from singletons set up in main.
package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/config"
	dualstore "github.com/jannofresh/jannofresh-api/internal/infrastructure/store"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
	"github.com/jannofresh/jannofresh-api/pkg/mailer"
)

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client
	esClient    *elasticsearch.Client

	jwtManager *helpers.JWTManager

	mailgunClient *mailer.Mailgun
	rabbitPub     *helpers.RabbitPublisher

	userStore    *dualstore.UserStore
	productStore *dualstore.ProductStore
	orderStore   *dualstore.OrderStore
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }
func SetGCS(s *storage.Client)   { gcsClient = s }
func GetGCS() *storage.Client    { return gcsClient }
func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client  { return esClient }

// SetJWT installs the token manager. There is no default: main fails fast
// when JWT_SECRET is missing, so GetJWT never has to invent a secret.
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

func SetMailgun(m *mailer.Mailgun)            { mailgunClient = m }
func GetMailgun() *mailer.Mailgun             { return mailgunClient }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

func SetUserStore(s *dualstore.UserStore)       { userStore = s }
func GetUserStore() *dualstore.UserStore        { return userStore }
func SetProductStore(s *dualstore.ProductStore) { productStore = s }
func GetProductStore() *dualstore.ProductStore  { return productStore }
func SetOrderStore(s *dualstore.OrderStore)     { orderStore = s }
func GetOrderStore() *dualstore.OrderStore      { return orderStore }
