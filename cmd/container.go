package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/talentshift/ats/pkg/fsx"
	"github.com/talentshift/ats/pkg/fsx/fsxs3"
	"github.com/talentshift/ats/pkg/logx"
	"github.com/talentshift/ats/screening/candidate/candidateapi"
	"github.com/talentshift/ats/screening/candidate/candidateinfra"
	"github.com/talentshift/ats/screening/candidate/candidatesrv"
	"github.com/talentshift/ats/screening/candidate/worker"
	"github.com/talentshift/ats/screening/job/jobapi"
	"github.com/talentshift/ats/screening/job/jobinfra"
	"github.com/talentshift/ats/screening/job/jobsrv"
)

const scoringQueueName = "scoring"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Services
	JobService       *jobsrv.JobService
	CandidateService *candidatesrv.Service

	// API Handlers
	JobHandlers       *jobapi.Handlers
	CandidateHandlers *candidateapi.Handlers

	// Background
	ScoringWorker *worker.ScoringWorker
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")
}

func (c *Container) initServices() {
	ctx := context.Background()

	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)

	if err := jobRepo.EnsureSchema(ctx); err != nil {
		logx.Fatalf("Failed to ensure jobs schema: %v", err)
	}
	if err := candidateRepo.EnsureSchema(ctx); err != nil {
		logx.Fatalf("Failed to ensure candidates schema: %v", err)
	}

	// --- Queue ---
	queue := candidateinfra.NewRedisScoringQueue(c.Redis, scoringQueueName)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.CandidateService = candidatesrv.NewService(candidateRepo, jobRepo, c.FileSystem, queue)

	if _, err := c.JobService.EnsureDefaultJob(ctx); err != nil {
		logx.Warnf("Failed to seed default job: %v", err)
	}

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)

	// --- Background Workers ---
	c.ScoringWorker = worker.NewScoringWorker(c.CandidateService, queue, workerCount())
}

func workerCount() int {
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		logx.Warnf("Invalid WORKER_COUNT %q, using default", v)
	}
	return 4
}
