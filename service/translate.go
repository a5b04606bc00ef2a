package service

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// TranslateService wraps AWS Translate. The source language is always
// auto-detected; callers only choose the target.
type TranslateService struct {
	client *translate.Client
}

func NewTranslateService(ctx context.Context, region, accessKeyID, secretAccessKey string) (*TranslateService, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &TranslateService{client: translate.NewFromConfig(cfg)}, nil
}

func (s *TranslateService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	out, err := s.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String("auto"),
		TargetLanguageCode: aws.String(targetLanguage),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.TranslatedText), nil
}
