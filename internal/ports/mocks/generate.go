//go:generate mockgen -source=../greeting_repository.go -destination=./mock_greeting_repository.go -package=mocks
//go:generate mockgen -source=../validator.go           -destination=./mock_validator.go           -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../message_consumer.go    -destination=./mock_message_consumer.go    -package=mocks
//go:generate mockgen -source=../log_read_service.go    -destination=./mock_log_read_service.go    -package=mocks
//go:generate mockgen -source=../log_cache.go           -destination=./mock_log_cache.go           -package=mocks

package mocks
