package config

import (
	"errors"
	"sync/atomic"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// MatchPolicyHolder serves the correlation weights and swaps them in place
// whenever the backing YAML file changes.
type MatchPolicyHolder struct {
	current atomic.Value // holds entities.MatchPolicy
}

var _ interfaces.IMatchPolicyProvider = (*MatchPolicyHolder)(nil)

// NewStaticMatchPolicy wraps a fixed policy.
func NewStaticMatchPolicy(p entities.MatchPolicy) *MatchPolicyHolder {
	h := &MatchPolicyHolder{}
	h.current.Store(p)
	return h
}

// NewMatchPolicyHolder loads matching.yml from path (or the usual config
// directories when path is empty) and watches it. When no path is given and
// nothing is found, the default policy is served.
func NewMatchPolicyHolder(path string) (*MatchPolicyHolder, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("matching")
		v.SetConfigType("yml")
		v.AddConfigPath("/etc/gwansang")
		v.AddConfigPath(".")
	}
	setPolicyDefaults(v, entities.DefaultMatchPolicy())

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		found = false
		log.Info("[matching][config] no matching config found, using defaults")
	}

	policy, err := decodePolicy(v)
	if err != nil {
		return nil, err
	}

	h := NewStaticMatchPolicy(policy)
	if !found {
		return h, nil
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := decodePolicy(v)
		if err != nil {
			log.WithError(err).Warn("[matching][config] invalid policy ignored")
			return
		}
		h.current.Store(updated)
		log.WithField("file", e.Name).Info("[matching][config] policy reloaded")
	})
	v.WatchConfig()
	return h, nil
}

func (h *MatchPolicyHolder) Get() entities.MatchPolicy {
	return h.current.Load().(entities.MatchPolicy)
}

func setPolicyDefaults(v *viper.Viper, p entities.MatchPolicy) {
	v.SetDefault("matching.timeWindowWeight", p.TimeWindowWeight)
	v.SetDefault("matching.amountWeight", p.AmountWeight)
	v.SetDefault("matching.phoneWeight", p.PhoneWeight)
	v.SetDefault("matching.emailWeight", p.EmailWeight)
	v.SetDefault("matching.cardLastFourWeight", p.CardLastFourWeight)
	v.SetDefault("matching.highThreshold", p.HighThreshold)
	v.SetDefault("matching.mediumThreshold", p.MediumThreshold)
}

func decodePolicy(v *viper.Viper) (entities.MatchPolicy, error) {
	p := entities.MatchPolicy{
		TimeWindowWeight:   v.GetInt("matching.timeWindowWeight"),
		AmountWeight:       v.GetInt("matching.amountWeight"),
		PhoneWeight:        v.GetInt("matching.phoneWeight"),
		EmailWeight:        v.GetInt("matching.emailWeight"),
		CardLastFourWeight: v.GetInt("matching.cardLastFourWeight"),
		HighThreshold:      v.GetInt("matching.highThreshold"),
		MediumThreshold:    v.GetInt("matching.mediumThreshold"),
	}
	return p, validatePolicy(p)
}

func validatePolicy(p entities.MatchPolicy) error {
	for _, w := range []int{p.TimeWindowWeight, p.AmountWeight, p.PhoneWeight, p.EmailWeight, p.CardLastFourWeight} {
		if w < 0 {
			return errors.New("matching weights cannot be negative")
		}
	}
	if p.MediumThreshold <= 0 || p.HighThreshold < p.MediumThreshold {
		return errors.New("matching thresholds must satisfy 0 < medium <= high")
	}
	return nil
}
