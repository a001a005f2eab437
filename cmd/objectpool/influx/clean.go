package influx

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"net/http"
	"net/url"
)

func init() {
	influxCmd.AddCommand(influxCleanCmd)
}

var influxCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean bench results from previous analyzer runs",
	Args:  cobra.NoArgs,
	Run:   influxClean,
}

func influxClean(_ *cobra.Command, _ []string) {
	for _, dataset := range datasets {
		if err := influxDropSeries(dataset); err == nil {
			logrus.Infof("dropped series [%s]", dataset)
		} else {
			logrus.Fatalf("error dropping series [%s] (%v)", dataset, err)
		}
	}
}

func influxDropSeries(series string) error {
	query := url.QueryEscape(fmt.Sprintf("DROP SERIES FROM %s", series))
	resp, err := http.Post(fmt.Sprintf("%s/query?db=%s&q=%s", influxDbUrl, influxDbDatabase, query), "text/plain", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return errors.Errorf("status(%d, %s)", resp.StatusCode, resp.Status)
	}
	return nil
}
