package config

import (
	"context"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ParameterSource is the slice of the SSM API that LoadSSM needs.
type ParameterSource interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// LoadSSM merges every parameter stored under SSM_PARAMETER_PREFIX into cfg. The last path
// segment becomes the key, so /devfolio/prod/SUPABASE_JWT_SECRET sets SUPABASE_JWT_SECRET.
// Values already present in the environment win.
func LoadSSM(ctx context.Context, cfg map[string]string) error {
	prefix := GetString(cfg, "SSM_PARAMETER_PREFIX", "")
	if prefix == "" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	return MergeParameters(ctx, ssm.NewFromConfig(awsCfg), prefix, cfg)
}

func MergeParameters(ctx context.Context, source ParameterSource, prefix string, cfg map[string]string) error {
	input := &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	}

	loaded := 0
	for {
		out, err := source.GetParametersByPath(ctx, input)
		if err != nil {
			return err
		}
		for _, p := range out.Parameters {
			key := path.Base(aws.ToString(p.Name))
			if key == "" || key == "." || key == "/" {
				continue
			}
			if existing, ok := cfg[key]; ok && strings.TrimSpace(existing) != "" {
				continue
			}
			cfg[key] = aws.ToString(p.Value)
			loaded++
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	log.Info().Str("prefix", prefix).Int("parameters", loaded).Msg("Loaded configuration from SSM")
	return nil
}
