package testutil

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BufferLoggerTest struct {
	suite.Suite
	logger BufferedLogger
}

func TestBufferLogger(t *testing.T) {
	suite.Run(t, new(BufferLoggerTest))
}

func (t *BufferLoggerTest) SetupSuite() {
	t.logger = NewBufferedLogger()
}

func (t *BufferLoggerTest) SetupTest() {
	t.logger.Reset()
}

func (t *BufferLoggerTest) Test_Read() {
	t.logger.Debug("test")

	data, err := io.ReadAll(t.logger)
	t.Require().NoError(err)
	t.Contains(string(data), `"msg":"test"`)
}

func (t *BufferLoggerTest) Test_Bytes() {
	t.logger.Debug("test")
	t.Contains(string(t.logger.Bytes()), `"msg":"test"`)
}

func (t *BufferLoggerTest) Test_String() {
	t.logger.Info("test")
	t.Contains(t.logger.String(), `"msg":"test"`)
	t.Contains(t.logger.String(), `"level":"INFO"`)
}

func (t *BufferLoggerTest) TestRace() {
	var (
		wg      sync.WaitGroup
		starter sync.WaitGroup
	)
	starter.Add(1)
	wg.Add(2)
	go func() {
		starter.Wait()
		t.logger.Debug("test")
		wg.Done()
	}()
	go func() {
		starter.Wait()
		t.logger.String()
		wg.Done()
	}()
	starter.Done()
	wg.Wait()
}
