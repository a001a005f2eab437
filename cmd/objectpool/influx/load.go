package influx

import (
	"bufio"
	"bytes"
	"fmt"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/openziti/objectpool/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

func init() {
	influxCmd.AddCommand(influxLoadCmd)
}

var influxLoadCmd = &cobra.Command{
	Use:   "load <resultsRoot>",
	Short: "Load bench results into the analyzer",
	Args:  cobra.ExactArgs(1),
	Run:   influxLoad,
}

func influxLoad(_ *cobra.Command, args []string) {
	results, err := util.DiscoverResults(args[0])
	if err != nil {
		logrus.Fatalf("error discovering results (%v)", err)
	}

	authToken := ""
	if influxDbUsername != "" || influxDbPassword != "" {
		authToken = fmt.Sprintf("%s:%s", influxDbUsername, influxDbPassword)
	}
	client := influxdb2.NewClient(influxDbUrl, authToken)
	writeApi := client.WriteAPI("", influxDbDatabase)

	for path, rid := range results {
		for _, dataset := range datasets {
			data, err := readDataset(filepath.Join(path, dataset+".csv"))
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				logrus.Fatalf("error reading dataset [%s] (%v)", dataset, err)
			}
			for ts, v := range data {
				t := time.Unix(0, ts)
				pt := influxdb2.NewPoint(dataset, nil, map[string]interface{}{"v": v}, t).AddTag("run", rid.Id)
				writeApi.WritePoint(pt)
			}
			logrus.Infof("wrote %d points for run [%s] dataset [%s]", len(data), rid.Id, dataset)
		}
	}

	client.Close()
}

func readDataset(path string) (data map[int64]int64, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data = make(map[int64]int64)
	scanner := bufio.NewScanner(bytes.NewBuffer(raw))
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Split(line, ",")
		ts, err := strconv.ParseInt(tokens[0], 10, 64)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(tokens[1], 10, 64)
		if err != nil {
			return nil, err
		}
		data[ts] = v
	}

	return data, nil
}
