package main

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/almogdepaz/ursa/config"
	"github.com/almogdepaz/ursa/crypto/encrypt/tibe"
	"github.com/almogdepaz/ursa/logging"
	"github.com/almogdepaz/ursa/node"
	"github.com/almogdepaz/ursa/utils"
)

var (
	configPath = pflag.StringP("config", "c", "config/config.yaml", "path of the yaml config")
	identity   = pflag.StringP("identity", "i", "", "identity to encrypt to, overrides the config")
	message    = pflag.StringP("message", "m", "", "message to encrypt, overrides the config")
)

func main() {
	pflag.Parse()

	cfg, err := config.NewConfig(*configPath)
	utils.PanicOnError(err)
	if *identity != "" {
		cfg.TIBE.Identity = *identity
	}
	if *message != "" {
		cfg.TIBE.Message = *message
	}
	l, err := logging.NewLogger(cfg.Log)
	utils.PanicOnError(err)
	logging.SetLogger(l)
	log := logging.GetLogger().WithField("cmd", "tibe")

	if err := run(cfg, log); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logrus.Entry) error {
	n, k := cfg.TIBE.Parties, cfg.TIBE.Threshold
	id := tibe.Identity(cfg.TIBE.Identity)

	pk, vk, shares, err := tibe.Setup(n, k, tibe.WithLogger(log))
	if err != nil {
		utils.LogOnError(err, "[TIBE] setup failed", log)
		return err
	}
	log.WithFields(logrus.Fields{"n": n, "k": k, "pk": hexutil.Encode(pk.ToBytes())}).Info("[TIBE] system ready")

	parties := make([]node.Requester, n)
	for i, share := range shares {
		p := node.NewParty(pk, share, n, log)
		defer p.Stop()
		parties[i] = p
	}

	ct, err := tibe.Encrypt(pk, id, []byte(cfg.TIBE.Message), tibe.WithLogger(log))
	if err != nil {
		utils.LogOnError(err, "[TIBE] encryption failed", log)
		return err
	}
	log.WithField("ciphertext", hexutil.Encode(ct.ToBytes())).Info("[TIBE] encrypted")

	ctx := context.Background()
	if timeout := cfg.TIBE.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	sk, indices, err := node.NewCombiner(pk, vk, k, log).Extract(ctx, id, parties)
	if err != nil {
		utils.LogOnError(err, "[TIBE] key extraction failed", log)
		return err
	}
	defer sk.Wipe()

	msg, err := tibe.Decrypt(pk, id, sk, ct)
	if err != nil {
		utils.LogOnError(err, "[TIBE] decryption failed", log)
		return err
	}
	log.WithFields(logrus.Fields{
		"identity": string(id),
		"parties":  indices,
		"message":  string(msg),
	}).Info("[TIBE] decrypted")
	return nil
}
