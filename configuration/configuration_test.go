package configuration

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestDefault(t *testing.T) {

	c := Default()

	biff.AssertEqual(c.HttpAddr, "127.0.0.1:8080")
	biff.AssertEqual(c.Dir, "storage")
	biff.AssertFalse(c.SaveOnStop)
	biff.AssertEqual(c.LogLevel, "info")
}
