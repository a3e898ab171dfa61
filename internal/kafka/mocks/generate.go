package mocks

//go:generate mockgen -source=../consumer.go -destination=mock_reader.go -package=mocks
