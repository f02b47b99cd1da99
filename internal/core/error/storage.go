package errx

import "net/http"

const (
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// PostgresErrorMessage describes PostgreSQL related failures.
	PostgresErrorMessage = "postgres operation failed"
	// MongoErrorMessage describes MongoDB related failures.
	MongoErrorMessage = "mongo operation failed"
	// FileErrorMessage describes snapshot file failures.
	FileErrorMessage = "snapshot file operation failed"
)

// WrapRedis maps Redis errors to AppError.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, RedisErrorMessage)
}

// WrapPostgres maps database/sql errors from the postgres driver.
func WrapPostgres(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, PostgresErrorMessage)
}

// WrapMongo maps mongo driver errors.
func WrapMongo(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, MongoErrorMessage)
}

// WrapFile maps filesystem errors raised by the file snapshot store.
func WrapFile(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusInternalServerError, FileErrorMessage)
}
