package secrets

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sirupsen/logrus"
)

// ManagerProvider resolves secrets from AWS Secrets Manager, matching the
// secret provisioning the deployed stack uses.
type ManagerProvider struct {
	client *secretsmanager.Client
	logger *logrus.Logger
}

func NewManagerProvider(ctx context.Context, logger *logrus.Logger) (*ManagerProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &ManagerProvider{
		client: secretsmanager.NewFromConfig(cfg),
		logger: logger,
	}, nil
}

var _ Provider = (*ManagerProvider)(nil)

func (p *ManagerProvider) Fetch(ctx context.Context, id string) (string, bool) {
	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		if p.logger != nil {
			p.logger.WithError(err).WithField("secret_id", id).Error("secret fetch failed")
		}
		return "", false
	}
	if out.SecretString == nil {
		if p.logger != nil {
			p.logger.WithField("secret_id", id).Error("secret has no string payload")
		}
		return "", false
	}
	return aws.ToString(out.SecretString), true
}
