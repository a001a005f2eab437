package bench

import (
	"fmt"
	"github.com/openziti/objectpool"
	"github.com/openziti/objectpool/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

func init() {
	benchCmd.AddCommand(benchRunCmd)
}

var benchRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run heap, stack, and pool allocation passes",
	Args:  cobra.NoArgs,
	Run:   benchRun,
}

func benchRun(_ *cobra.Command, _ []string) {
	p := &profile{count: count, capacity: capacity, strategy: strategy}
	if configPath != "" {
		if err := p.loadFile(configPath); err != nil {
			logrus.Fatalf("error loading profile (%v)", err)
		}
	}
	if p.capacity < 1 {
		p.capacity = p.count
	}

	durations := make(map[string]time.Duration)

	start := time.Now()
	for i := 0; i < p.count; i++ {
		obj := new(bigObject)
		processObj(obj)
	}
	durations["heap"] = time.Since(start)
	logrus.Infof("heap allocations took %v", durations["heap"])

	start = time.Now()
	for i := 0; i < p.count; i++ {
		var obj bigObject
		processObj(&obj)
	}
	durations["stack"] = time.Since(start)
	logrus.Infof("stack allocations took %v", durations["stack"])

	start = time.Now()
	pool, err := newPool(p)
	if err != nil {
		logrus.Fatalf("error constructing pool (%v)", err)
	}
	durations["pool_construct"] = time.Since(start)
	logrus.Infof("pool construction took %v", durations["pool_construct"])

	start = time.Now()
	for i := 0; i < p.count; i++ {
		obj := pool.Acquire()
		if obj == nil {
			logrus.Warnf("pool exhausted after %d acquires", i)
			break
		}
		processObj(obj)
	}
	durations["pool_acquire"] = time.Since(start)
	logrus.Infof("pool acquires took %v", durations["pool_acquire"])
	pool.Close()

	if resultsRoot != "" {
		if err := writeResults(p, durations); err != nil {
			logrus.Fatalf("error writing results (%v)", err)
		}
	}
}

func newPool(p *profile) (objectpool.Pool[bigObject], error) {
	switch p.strategy {
	case "array":
		pool, err := objectpool.NewArrayPool[bigObject]("bench", p.capacity, nil)
		if err != nil {
			return nil, err
		}
		return pool, nil

	case "multiset":
		pool, err := objectpool.NewMultisetPool[bigObject]("bench", p.capacity, nil)
		if err != nil {
			return nil, err
		}
		return pool, nil

	default:
		return nil, errors.Errorf("unknown strategy '%s'", p.strategy)
	}
}

func writeResults(p *profile, durations map[string]time.Duration) error {
	id := fmt.Sprintf("bench_%d", time.Now().Unix())
	outPath := filepath.Join(resultsRoot, id)
	if err := os.MkdirAll(outPath, os.ModePerm); err != nil {
		return err
	}
	values := map[string]string{
		"count":    strconv.Itoa(p.count),
		"capacity": strconv.Itoa(p.capacity),
		"strategy": p.strategy,
	}
	if err := util.WriteResultsId(id, outPath, values); err != nil {
		return err
	}
	now := time.Now().UnixNano()
	for dataset, d := range durations {
		line := fmt.Sprintf("%d,%d\n", now, d.Nanoseconds())
		if err := os.WriteFile(filepath.Join(outPath, dataset+".csv"), []byte(line), os.ModePerm); err != nil {
			return err
		}
	}
	logrus.Infof("wrote results to [%s]", outPath)
	return nil
}
