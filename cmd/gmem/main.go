package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"

	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"

	garena "github.com/blong14/gmem/internal/arena"
	gsb "github.com/blong14/gmem/internal/builder"
	genv "github.com/blong14/gmem/internal/environment"
	gerrors "github.com/blong14/gmem/internal/errors"
	glimiter "github.com/blong14/gmem/internal/limiter"
	glog "github.com/blong14/gmem/internal/logging"
	gpool "github.com/blong14/gmem/internal/pool"
	gstore "github.com/blong14/gmem/internal/store"
	gvec "github.com/blong14/gmem/internal/vector"
)

const (
	service     = "gmem"
	environment = "production"
	id          = 1
)

const keysPerWorker = 4096

func tracerProvider(url string) (*tracesdk.TracerProvider, error) {
	// Create the Jaeger exporter
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))
	if err != nil {
		return nil, err
	}
	tp := tracesdk.NewTracerProvider(
		// Always be sure to batch in production.
		tracesdk.WithBatcher(exp),
		// Record information about this application in a Resource.
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(service),
			attribute.String("environment", environment),
			attribute.Int64("ID", id),
		)),
	)
	return tp, nil
}

// workload builds keys with the string builder, interns them into a
// worker-owned table, and buckets set latencies into an arena-backed
// histogram. Each worker owns its table exclusively.
func workload(worker int, table gstore.Table, wait glimiter.RateLimiter) gpool.Task {
	return func(ctx context.Context) {
		defer glog.TraceStart(fmt.Sprintf("workload::%d", worker))()

		a := garena.New(1 << 12)
		defer a.Release()
		hist := garena.MakeSlice[int64](a, 64)
		durations := gvec.New[time.Duration]()

		prefix := "key_" + strconv.Itoa(worker) + "_"
		for i := 0; i < keysPerWorker; i++ {
			if err := wait.Wait(ctx); err != nil {
				glog.Track("workload::%d canceled: %s", worker, err)
				return
			}
			start := time.Now()
			sb := gsb.New()
			sb.AppendString(prefix)
			sb.AppendString(strconv.Itoa(i))
			key := sb.Bytes()
			if tracer, ok := table.(gstore.TableTracer); ok && genv.TraceEnabled() {
				tracer.TraceSet(ctx, key, i)
			} else {
				table.Set(key, i)
			}
			d := time.Since(start)
			durations.Push(d)
			bucket := int(d / time.Microsecond)
			if bucket >= len(hist) {
				bucket = len(hist) - 1
			}
			hist[bucket]++
		}

		var misses int
		for i := 0; i < keysPerWorker; i++ {
			if _, ok := table.Get([]byte(prefix + strconv.Itoa(i))); !ok {
				misses++
			}
		}
		if misses > 0 {
			log.Printf("workload::%d %d misses", worker, misses)
		}
		glog.Track(
			"workload::%d count=%d samples=%d p0=%d",
			worker, table.Count(), durations.Len(), hist[0],
		)
	}
}

func main() {
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	tp, err := tracerProvider("http://jaeger.cluster/api/traces")
	if err != nil {
		log.Fatal(err)
	}
	otel.SetTracerProvider(tp)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		s := <-sigint
		log.Printf("received %s signal\n", s)
		cancel()
	}()

	p := gpool.New()
	p.Start(ctx)

	lim := glimiter.New(100_000, time.Second, 256)

	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		i := i
		table := gstore.New(&gstore.TableOpts{
			TableName: []byte(fmt.Sprintf("table::%d", i)),
		})
		task := workload(i, table, lim)
		wg.Add(1)
		p.Send(ctx, func(ctx context.Context) {
			defer wg.Done()
			task(ctx)
		})
	}
	wg.Wait()
	p.Wait(ctx)

	errs := gerrors.Append(tp.ForceFlush(ctx), tp.Shutdown(ctx))
	if errs.ErrorOrNil() != nil {
		log.Println(errs)
	}
	cancel()
}
