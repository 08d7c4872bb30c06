package contextutils_test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/ems-solar/release-tools/contextutils"
)

var _ = Describe("ContextAndLogging", func() {

	AfterEach(func() {
		contextutils.SetLogLevel(zapcore.InfoLevel)
	})

	Context("LoggerFrom", func() {
		It("falls back to a usable logger when the context carries none", func() {
			Expect(contextutils.LoggerFrom(context.Background())).NotTo(BeNil())
			Expect(contextutils.LoggerFrom(nil)).NotTo(BeNil())
		})

		It("returns the logger attached by WithLogger", func() {
			ctx := contextutils.WithLogger(context.Background(), "test")
			Expect(contextutils.LoggerFrom(ctx)).NotTo(BeNil())
			Expect(contextutils.LoggerFrom(ctx)).NotTo(BeIdenticalTo(contextutils.LoggerFrom(context.Background())))
		})
	})

	Context("SetLogLevelFromString", func() {
		expectLevel := func(logLevel string, expected zapcore.Level) {
			contextutils.SetLogLevelFromString(logLevel)
			Expect(contextutils.GetLogLevel()).To(Equal(expected))
		}

		It("maps level names to zap levels", func() {
			expectLevel("debug", zapcore.DebugLevel)
			expectLevel("warn", zapcore.WarnLevel)
			expectLevel("error", zapcore.ErrorLevel)
			expectLevel("panic", zapcore.PanicLevel)
			expectLevel("fatal", zapcore.FatalLevel)
		})

		It("defaults unknown names to info", func() {
			expectLevel("chatty", zapcore.InfoLevel)
		})
	})
})
